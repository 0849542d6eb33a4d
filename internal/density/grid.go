package density

import (
	"github.com/golang/geo/r2"

	"github.com/fielddisc/discstats-backend-go/internal/field"
	"github.com/fielddisc/discstats-backend-go/internal/stats"
)

// Grid parameters. The accumulator covers the full canvas at a fixed
// cell size; the kernel radius is a constant number of canvas units,
// independent of point count.
const (
	CellSize     = 4 // canvas units per cell
	KernelRadius = 20

	// Cells at exactly zero mean "no nearby events", not "low
	// density"; epsilon keeps them out of the normalizer.
	epsilon = 1e-9

	// Normalizing by the 98th percentile instead of the maximum
	// desaturates single-cell hotspots so the gradient stays readable
	// across the bulk of the distribution.
	normPercentile = 98
)

// Field is the accumulated intensity surface for one point set. It is
// built from scratch per density pass and never mutated afterwards.
type Field struct {
	cells []float64
	rows  int
	cols  int
}

// Rows returns the grid height in cells
func (f *Field) Rows() int { return f.rows }

// Cols returns the grid width in cells
func (f *Field) Cols() int { return f.cols }

// At returns the accumulated value at (row, col)
func (f *Field) At(row, col int) float64 {
	return f.cells[row*f.cols+col]
}

// Accumulate splats every point's Gaussian stamp onto a fresh grid.
// Points are expected in canvas coordinates; stamps are clipped at the
// grid bounds. Summation is commutative, so point order only moves the
// result within floating-point tolerance.
func Accumulate(points []r2.Point) *Field {
	f := &Field{
		rows: field.CanvasHeight / CellSize,
		cols: field.CanvasWidth / CellSize,
	}
	f.cells = make([]float64, f.rows*f.cols)

	k := newKernel(KernelRadius, CellSize)

	for _, p := range points {
		col := int(p.X) / CellSize
		row := int(p.Y) / CellSize

		for dy := -k.radius; dy <= k.radius; dy++ {
			r := row + dy
			if r < 0 || r >= f.rows {
				continue
			}
			for dx := -k.radius; dx <= k.radius; dx++ {
				c := col + dx
				if c < 0 || c >= f.cols {
					continue
				}
				f.cells[r*f.cols+c] += k.weights[dy+k.radius][dx+k.radius]
			}
		}
	}

	return f
}

// Normalizer selects the normalization denominator: the 98th
// percentile of all cells above epsilon. ok=false signals a degenerate
// surface (no points, or nothing accumulated) that must short-circuit
// to a transparent output instead of dividing by zero.
func (f *Field) Normalizer() (float64, bool) {
	var active []float64
	for _, v := range f.cells {
		if v > epsilon {
			active = append(active, v)
		}
	}
	if len(active) == 0 {
		return 0, false
	}
	return stats.Percentile(active, normPercentile), true
}
