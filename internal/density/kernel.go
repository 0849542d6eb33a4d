package density

import "math"

// kernel is a discretized isotropic Gaussian stamp with a square
// footprint of (2*radius+1)^2 cells. It is precomputed once per
// density pass so the cost per point is bounded by the stamp size,
// never by the grid size.
type kernel struct {
	radius  int // cells
	weights [][]float64
}

// newKernel builds the stamp for a radius given in canvas units. The
// standard deviation is derived from the radius (radius ~ 2*sigma).
func newKernel(radiusUnits, cellSize int) *kernel {
	radius := radiusUnits / cellSize
	sigma := float64(radius) / 2.0
	twoSigmaSq := 2 * sigma * sigma

	weights := make([][]float64, 2*radius+1)
	for dy := -radius; dy <= radius; dy++ {
		row := make([]float64, 2*radius+1)
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			row[dx+radius] = math.Exp(-d2 / twoSigmaSq)
		}
		weights[dy+radius] = row
	}

	return &kernel{radius: radius, weights: weights}
}
