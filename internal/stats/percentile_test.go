package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, 1.0, Percentile(values, 0))
	assert.Equal(t, 10.0, Percentile(values, 100))
	assert.Equal(t, 5.5, Percentile(values, 50))

	// linear interpolation between closest ranks
	assert.InDelta(t, 9.82, Percentile(values, 98), 1e-9)
}

func TestPercentile_Bounds(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}

	assert.Equal(t, 0.0, Percentile(nil, 50))
	assert.Equal(t, 1.0, Percentile(values, -10))
	assert.Equal(t, 3.0, Percentile(values, 400))
}

func TestPercentile_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []float64{5, 1, 3}
	Percentile(values, 50)
	assert.Equal(t, []float64{5, 1, 3}, values)
}

func TestQuantile_SingleValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.98))
}

func TestQuantile_Bounds(t *testing.T) {
	t.Parallel()

	values := []float64{3, 1, 2}
	assert.Equal(t, 1.0, Quantile(values, -0.5))
	assert.Equal(t, 3.0, Quantile(values, 1.5))
}
