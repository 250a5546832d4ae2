package frame

import (
	"fmt"
	"math"

	"github.com/pxuan19/CAST/pkg/errors"
)

// Dataset is the sum of the two supported query-input shapes.  It is a sealed
// interface: the only implementations are Tabular and Gridded, and the shape
// is resolved exactly once, at the Flatten boundary.  Everything downstream
// of Flatten operates on the flat tabular representation.
type Dataset interface {
	// Names returns the feature names the dataset carries, available without
	// flattening so callers can resolve a feature selection first.
	Names() []string

	flatten(keep []string) (*Table, Restorer, error)
}

// Restorer writes a per-row result vector back into the shape of the dataset
// it was derived from.
type Restorer interface {
	// Restore converts the flat result values (one per flattened row, in row
	// order) into an Output matching the original input shape.
	Restore(values []float64) (*Output, error)
}

// Output is the shape-matched result of an uncertainty computation:
// exactly one of Vector (tabular input) or Grid (gridded input) is set.
type Output struct {
	Vector []float64
	Grid   *Grid
}

// IsGridded reports whether the output carries a grid.
func (o *Output) IsGridded() bool { return o.Grid != nil }

// Tabular wraps a flat feature table as a Dataset.
type Tabular struct {
	Table *Table
}

// Gridded wraps an in-memory grid as a Dataset.
type Gridded struct {
	Grid *Grid
}

// Flatten resolves a Dataset into its flat tabular form plus the Restorer
// that maps results back to the original shape.  keep names the features that
// participate in the computation (nil means all): rows or cells carrying NaN
// in a kept feature are excluded and restored as NaN, while NaN in any other
// column or layer has no effect.  Every kept name must exist in the dataset;
// callers intersect names beforehand.
func Flatten(d Dataset, keep []string) (*Table, Restorer, error) {
	if d == nil {
		return nil, nil, errors.InvalidParam("query dataset must not be nil")
	}
	return d.flatten(keep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Tabular — pass-through, masking NaN rows in kept columns
// ─────────────────────────────────────────────────────────────────────────────

func (t Tabular) Names() []string {
	if t.Table == nil {
		return nil
	}
	return t.Table.Names()
}

func (t Tabular) flatten(keep []string) (*Table, Restorer, error) {
	if t.Table == nil {
		return nil, nil, errors.InvalidParam("tabular dataset carries a nil table")
	}
	names := keep
	if names == nil {
		names = t.Table.Names()
	}
	cols := make([][]float64, len(names))
	for j, n := range names {
		v, ok := t.Table.Column(n)
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeColumnNotFound, "column not found").
				WithDetail("name=" + n)
		}
		cols[j] = v
	}

	total := t.Table.NumRows()
	kept := completeIndices(cols, total)
	if len(kept) == total {
		return t.Table, tabularRestorer{rows: total}, nil
	}

	out := make([]Column, len(names))
	for j, n := range names {
		out[j] = Column{Name: n, Values: gather(cols[j], kept)}
	}
	table, err := NewTable(out...)
	if err != nil {
		return nil, nil, err
	}
	return table, maskedRestorer{total: total, keep: kept}, nil
}

type tabularRestorer struct {
	rows int
}

func (r tabularRestorer) Restore(values []float64) (*Output, error) {
	if len(values) != r.rows {
		return nil, errors.New(errors.ErrCodeDimMismatch, "result length does not match query rows").
			WithDetail(fmt.Sprintf("got %d, expected %d", len(values), r.rows))
	}
	return &Output{Vector: values}, nil
}

// maskedRestorer expands a vector computed on complete rows back to the full
// row count, with NaN at the masked positions.
type maskedRestorer struct {
	total int
	keep  []int
}

func (r maskedRestorer) Restore(values []float64) (*Output, error) {
	if len(values) != len(r.keep) {
		return nil, errors.New(errors.ErrCodeDimMismatch, "result length does not match unmasked rows").
			WithDetail(fmt.Sprintf("got %d, expected %d", len(values), len(r.keep)))
	}
	out := make([]float64, r.total)
	for i := range out {
		out[i] = math.NaN()
	}
	for j, i := range r.keep {
		out[i] = values[j]
	}
	return &Output{Vector: out}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Gridded — mask NaN cells in kept layers, keep the index mapping
// ─────────────────────────────────────────────────────────────────────────────

func (g Gridded) Names() []string {
	if g.Grid == nil {
		return nil
	}
	return g.Grid.Names()
}

func (g Gridded) flatten(keep []string) (*Table, Restorer, error) {
	if g.Grid == nil {
		return nil, nil, errors.InvalidParam("gridded dataset carries a nil grid")
	}
	grid := g.Grid
	names := keep
	if names == nil {
		names = grid.Names()
	}
	layers := make([][]float64, len(names))
	for j, n := range names {
		cells, ok := grid.Layer(n)
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeColumnNotFound, "layer not found").
				WithDetail("name=" + n)
		}
		layers[j] = cells
	}

	// A cell participates only when every kept layer has a value there.
	kept := completeIndices(layers, grid.NumCells())

	cols := make([]Column, len(names))
	for j, n := range names {
		cols[j] = Column{Name: n, Values: gather(layers[j], kept)}
	}
	table, err := NewTable(cols...)
	if err != nil {
		return nil, nil, err
	}
	return table, gridRestorer{rows: grid.Rows(), cols: grid.Cols(), keep: kept}, nil
}

type gridRestorer struct {
	rows, cols int
	keep       []int
}

func (r gridRestorer) Restore(values []float64) (*Output, error) {
	if len(values) != len(r.keep) {
		return nil, errors.New(errors.ErrCodeDimMismatch, "result length does not match flattened cells").
			WithDetail(fmt.Sprintf("got %d, expected %d", len(values), len(r.keep)))
	}
	cells := make([]float64, r.rows*r.cols)
	for i := range cells {
		cells[i] = math.NaN()
	}
	for j, i := range r.keep {
		cells[i] = values[j]
	}
	out, err := NewGrid(r.rows, r.cols, Layer{Name: ResultLayerName, Cells: cells})
	if err != nil {
		return nil, err
	}
	return &Output{Grid: out}, nil
}

// completeIndices returns the indices in [0,total) where none of the columns
// carries NaN.
func completeIndices(cols [][]float64, total int) []int {
	kept := make([]int, 0, total)
	for i := 0; i < total; i++ {
		ok := true
		for _, col := range cols {
			if math.IsNaN(col[i]) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, i)
		}
	}
	return kept
}

// gather materializes the values of col at the kept indices.
func gather(col []float64, kept []int) []float64 {
	vals := make([]float64, len(kept))
	for j, i := range kept {
		vals[j] = col[i]
	}
	return vals
}
