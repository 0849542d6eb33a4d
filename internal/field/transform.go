package field

import (
	"github.com/golang/geo/r2"

	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// Field and canvas geometry. The field is 0-120 units long (two
// 20-unit end zones plus an 80-unit playing area) and ±27 units wide,
// centered at zero. The canvas is a fixed 280x600 rendering surface
// with the attacking end zone at the top.
const (
	FieldLength    = 120.0
	EndZoneDepth   = 20.0
	FieldHalfWidth = 27.0

	CanvasWidth  = 280
	CanvasHeight = 600

	scaleX = float64(CanvasWidth) / 56.0   // width axis, re-centered
	scaleY = float64(CanvasHeight) / FieldLength
)

// ToCanvas maps a field coordinate to canvas space. The length axis is
// flipped so the attacking end renders at the top; the width axis is
// re-centered on half the canvas width. Every grid and rendering
// consumer must share this convention.
func ToCanvas(c models.Coordinate) r2.Point {
	return r2.Point{
		X: c.X*scaleX + float64(CanvasWidth)/2,
		Y: (FieldLength - c.Y) * scaleY,
	}
}

// ToField inverts ToCanvas exactly.
func ToField(p r2.Point) models.Coordinate {
	return models.Coordinate{
		X: (p.X - float64(CanvasWidth)/2) / scaleX,
		Y: FieldLength - p.Y/scaleY,
	}
}
