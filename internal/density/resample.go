package density

import "math"

// Sub-linear compression keeps low-density areas visibly colored while
// genuine hotspots still read as more saturated.
const gamma = 0.8

// sample bilinearly interpolates the accumulated surface at fractional
// grid coordinates, clamped to the grid edge.
func (f *Field) sample(gx, gy float64) float64 {
	if gx < 0 {
		gx = 0
	}
	if gy < 0 {
		gy = 0
	}
	maxX := float64(f.cols - 1)
	maxY := float64(f.rows - 1)
	if gx > maxX {
		gx = maxX
	}
	if gy > maxY {
		gy = maxY
	}

	x0 := int(math.Floor(gx))
	y0 := int(math.Floor(gy))
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > f.cols-1 {
		x1 = f.cols - 1
	}
	if y1 > f.rows-1 {
		y1 = f.rows - 1
	}

	fx := gx - float64(x0)
	fy := gy - float64(y0)

	top := f.At(y0, x0)*(1-fx) + f.At(y0, x1)*fx
	bottom := f.At(y1, x0)*(1-fx) + f.At(y1, x1)*fx
	return top*(1-fy) + bottom*fy
}

// IntensityAt resamples the surface at a canvas pixel, normalizes
// against the percentile denominator, clamps to [0,1] and applies the
// compression exponent.
func (f *Field) IntensityAt(px, py int, norm float64) float64 {
	gx := (float64(px)+0.5)/CellSize - 0.5
	gy := (float64(py)+0.5)/CellSize - 0.5

	v := f.sample(gx, gy) / norm
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return math.Pow(v, gamma)
}

// Intensities returns the normalized, compressed per-cell surface.
// ok=false signals a degenerate surface with no eligible cells.
func (f *Field) Intensities() ([][]float64, bool) {
	norm, ok := f.Normalizer()
	if !ok {
		return nil, false
	}

	out := make([][]float64, f.rows)
	for r := 0; r < f.rows; r++ {
		row := make([]float64, f.cols)
		for c := 0; c < f.cols; c++ {
			v := f.At(r, c) / norm
			if v > 1 {
				v = 1
			}
			row[c] = math.Pow(v, gamma)
		}
		out[r] = row
	}
	return out, true
}
