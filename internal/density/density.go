// Package density produces a smoothed intensity surface (heatmap) from
// a point cloud in canvas coordinates. The pipeline is accumulation of
// a fixed Gaussian kernel per point, robust percentile normalization,
// bilinear resampling to pixels and a fixed color gradient. Every
// stage is deterministic for a fixed point set.
package density

import (
	"image"

	"github.com/golang/geo/r2"

	"github.com/fielddisc/discstats-backend-go/internal/field"
)

// Render runs the full pipeline and returns the colored canvas-sized
// surface. A degenerate point set yields a fully transparent image.
func Render(points []r2.Point) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, field.CanvasWidth, field.CanvasHeight))

	f := Accumulate(points)
	norm, ok := f.Normalizer()
	if !ok {
		return img
	}

	for y := 0; y < field.CanvasHeight; y++ {
		for x := 0; x < field.CanvasWidth; x++ {
			img.SetNRGBA(x, y, Colorize(f.IntensityAt(x, y, norm)))
		}
	}
	return img
}
