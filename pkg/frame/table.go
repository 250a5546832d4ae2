// Package frame defines the in-memory data shapes consumed by the uncertainty
// core: flat feature tables, gridded (raster-like) layers, and the adapter
// that resolves the two into a single tabular representation.  Acquisition of
// gridded data from raster files is an external concern; this package only
// models the decoded, in-memory form.
package frame

import (
	"fmt"
	"math"

	"github.com/pxuan19/CAST/pkg/errors"
)

// Column is a single named feature column.
type Column struct {
	Name   string
	Values []float64
}

// Table is an immutable table of named float64 columns.  All feature
// alignment in the uncertainty core is by column name, never by position, so
// two tables carrying the same features in a different order are equivalent.
type Table struct {
	cols  []Column
	index map[string]int
}

// NewTable constructs a Table from the given columns.  Column names must be
// unique and non-empty, and every column must have the same length.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	rows := -1
	for _, c := range cols {
		if c.Name == "" {
			return nil, errors.New(errors.ErrCodeValidation, "column name must not be empty")
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateColumn, "duplicate column name").
				WithDetail("name=" + c.Name)
		}
		if rows == -1 {
			rows = len(c.Values)
		} else if len(c.Values) != rows {
			return nil, errors.New(errors.ErrCodeColumnLengthMismatch, "columns have unequal lengths").
				WithDetail(fmt.Sprintf("column %q has %d values, expected %d", c.Name, len(c.Values), rows))
		}
		t.index[c.Name] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// MustTable is NewTable that panics on error.  Intended for tests and
// literals with statically-known shapes.
func MustTable(cols ...Column) *Table {
	t, err := NewTable(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// NumRows returns the number of observations in the table.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Values)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Names returns the column names in their order of appearance.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the table contains a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the values of the named column.  The returned slice is the
// table's backing storage and must not be mutated.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i].Values, true
}

// Select returns a new Table restricted to the named columns, in the given
// order.  Unknown names are an error; callers performing silent feature
// filtering intersect names beforehand.
func (t *Table) Select(names []string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		i, ok := t.index[n]
		if !ok {
			return nil, errors.New(errors.ErrCodeColumnNotFound, "column not found").WithDetail("name=" + n)
		}
		cols = append(cols, t.cols[i])
	}
	return NewTable(cols...)
}

// Rows materializes the named columns as a row-major matrix.  Every row slice
// is freshly allocated so callers may hand rows to concurrent workers.
func (t *Table) Rows(names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for j, n := range names {
		v, ok := t.Column(n)
		if !ok {
			return nil, errors.New(errors.ErrCodeColumnNotFound, "column not found").WithDetail("name=" + n)
		}
		cols[j] = v
	}
	rows := make([][]float64, t.NumRows())
	for i := range rows {
		row := make([]float64, len(names))
		for j := range names {
			row[j] = cols[j][i]
		}
		rows[i] = row
	}
	return rows, nil
}

// HasNaN reports whether any value in the named columns is NaN.
func (t *Table) HasNaN(names []string) bool {
	for _, n := range names {
		v, ok := t.Column(n)
		if !ok {
			continue
		}
		for _, x := range v {
			if math.IsNaN(x) {
				return true
			}
		}
	}
	return false
}
