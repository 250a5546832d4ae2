package uncertainty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		train [][]float64
		want  float64
	}{
		{
			name:  "two corners",
			train: [][]float64{{0, 0}, {3, 4}},
			want:  5,
		},
		{
			name:  "envelope from mixed rows",
			train: [][]float64{{1, 4}, {3, 0}, {2, 2}},
			want:  math.Sqrt(4 + 16),
		},
		{
			name:  "identical rows",
			train: [][]float64{{2, 2}, {2, 2}},
			want:  0,
		},
		{
			name:  "empty",
			train: nil,
			want:  0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, referenceRange(tt.train), 1e-12)
		})
	}
}

func TestNormalizeByRange(t *testing.T) {
	t.Parallel()
	mins := []float64{0, 2, 5}
	normalizeByRange(mins, 4)
	assert.Equal(t, []float64{0, 0.5, 1.25}, mins)

	// A zero range leaves the values untouched.
	untouched := []float64{1, 2}
	normalizeByRange(untouched, 0)
	assert.Equal(t, []float64{1, 2}, untouched)
}

func TestRescaleUnit(t *testing.T) {
	t.Parallel()
	values := []float64{2, 4, 6}
	rescaleUnit(values)
	assert.Equal(t, []float64{0, 0.5, 1}, values)

	constant := []float64{3, 3, 3}
	rescaleUnit(constant)
	assert.Equal(t, []float64{0, 0, 0}, constant)

	rescaleUnit(nil)
}
