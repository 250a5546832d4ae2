package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxuan19/CAST/pkg/errors"
	"github.com/pxuan19/CAST/pkg/frame"
)

func TestNewTable(t *testing.T) {
	t.Parallel()
	tbl, err := frame.NewTable(
		frame.Column{Name: "a", Values: []float64{1, 2, 3}},
		frame.Column{Name: "b", Values: []float64{4, 5, 6}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
	assert.True(t, tbl.Has("a"))
	assert.False(t, tbl.Has("c"))
}

func TestNewTableValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cols []frame.Column
		code errors.ErrorCode
	}{
		{
			name: "empty column name",
			cols: []frame.Column{{Name: "", Values: []float64{1}}},
			code: errors.ErrCodeValidation,
		},
		{
			name: "duplicate column name",
			cols: []frame.Column{
				{Name: "x", Values: []float64{1}},
				{Name: "x", Values: []float64{2}},
			},
			code: errors.ErrCodeDuplicateColumn,
		},
		{
			name: "unequal lengths",
			cols: []frame.Column{
				{Name: "a", Values: []float64{1, 2}},
				{Name: "b", Values: []float64{1}},
			},
			code: errors.ErrCodeColumnLengthMismatch,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := frame.NewTable(tt.cols...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code))
		})
	}
}

func TestTableSelect(t *testing.T) {
	t.Parallel()
	tbl := frame.MustTable(
		frame.Column{Name: "a", Values: []float64{1, 2}},
		frame.Column{Name: "b", Values: []float64{3, 4}},
		frame.Column{Name: "c", Values: []float64{5, 6}},
	)

	sub, err := tbl.Select([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Names())

	_, err = tbl.Select([]string{"nope"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeColumnNotFound))
}

func TestTableRows(t *testing.T) {
	t.Parallel()
	tbl := frame.MustTable(
		frame.Column{Name: "a", Values: []float64{1, 2}},
		frame.Column{Name: "b", Values: []float64{3, 4}},
	)
	rows, err := tbl.Rows([]string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {4, 2}}, rows)

	// Mutating a materialized row must not touch the table's storage.
	rows[0][0] = 99
	b, _ := tbl.Column("b")
	assert.Equal(t, 3.0, b[0])
}

func TestTableHasNaN(t *testing.T) {
	t.Parallel()
	tbl := frame.MustTable(
		frame.Column{Name: "a", Values: []float64{1, math.NaN()}},
		frame.Column{Name: "b", Values: []float64{3, 4}},
	)
	assert.True(t, tbl.HasNaN([]string{"a", "b"}))
	assert.False(t, tbl.HasNaN([]string{"b"}))
	assert.False(t, tbl.HasNaN([]string{"missing"}))
}
