package uncertainty

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxuan19/CAST/pkg/frame"
)

func TestFitDivisors(t *testing.T) {
	t.Parallel()
	train := frame.MustTable(
		frame.Column{Name: "a", Values: []float64{0, 10}},
		frame.Column{Name: "constant", Values: []float64{3, 3}},
	)
	divisors := fitDivisors(train, []string{"a", "constant"})
	require.Len(t, divisors, 2)
	assert.InDelta(t, math.Sqrt(50), divisors[0], 1e-12)
	// Zero spread falls back to divisor 1.
	assert.Equal(t, 1.0, divisors[1])
}

func TestScaledMatrix(t *testing.T) {
	t.Parallel()
	tbl := frame.MustTable(
		frame.Column{Name: "a", Values: []float64{2, 4}},
		frame.Column{Name: "b", Values: []float64{10, 20}},
	)

	unweighted, err := scaledMatrix(tbl, []string{"a", "b"}, []float64{2, 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {2, 2}}, unweighted)

	weighted, err := scaledMatrix(tbl, []string{"a", "b"}, []float64{2, 10}, []float64{3, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 0}, {6, 0}}, weighted)

	// The table's own storage is untouched.
	a, _ := tbl.Column("a")
	assert.Equal(t, []float64{2, 4}, a)
}
