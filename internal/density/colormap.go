package density

import "image/color"

// The intensity floor below which a pixel stays fully transparent so
// the background remains visible where no data exists.
const alphaCutoff = 0.01

type rgb struct {
	r, g, b float64
}

// band is one segment of the piecewise-linear gradient
type band struct {
	upTo     float64
	from, to rgb
}

// Six-band gradient over intensity in [0,1]:
// blue→cyan, cyan→green, green→yellow, yellow→orange, orange→red.
var bands = []band{
	{0.3, rgb{0, 0, 255}, rgb{0, 255, 255}},
	{0.5, rgb{0, 255, 255}, rgb{0, 255, 0}},
	{0.7, rgb{0, 255, 0}, rgb{255, 255, 0}},
	{0.9, rgb{255, 255, 0}, rgb{255, 165, 0}},
	{1.0, rgb{255, 165, 0}, rgb{255, 0, 0}},
}

// Colorize maps an intensity in [0,1] to an RGBA pixel. Alpha is
// linear in intensity with a floor, so any non-negligible intensity is
// still minimally visible.
func Colorize(intensity float64) color.NRGBA {
	if intensity < alphaCutoff {
		return color.NRGBA{}
	}

	lower := 0.0
	for _, b := range bands {
		if intensity <= b.upTo {
			t := (intensity - lower) / (b.upTo - lower)
			alpha := intensity*220 + 30
			if alpha > 255 {
				alpha = 255
			}
			return color.NRGBA{
				R: uint8(b.from.r + (b.to.r-b.from.r)*t),
				G: uint8(b.from.g + (b.to.g-b.from.g)*t),
				B: uint8(b.from.b + (b.to.b-b.from.b)*t),
				A: uint8(alpha),
			}
		}
		lower = b.upTo
	}

	// intensity is clamped upstream; red is the top of the scale
	return color.NRGBA{R: 255, A: 255}
}
