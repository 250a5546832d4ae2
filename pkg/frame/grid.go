package frame

import (
	"fmt"

	"github.com/pxuan19/CAST/pkg/errors"
)

// ResultLayerName is the fixed name of the single layer produced when a
// gridded dataset is run through the uncertainty computation.
const ResultLayerName = "uncertainty"

// Layer is one named raster band: Rows*Cols cells in row-major order.
// NaN cells mark missing data (nodata) and are excluded from computation.
type Layer struct {
	Name  string
	Cells []float64
}

// Grid is an in-memory gridded dataset of aligned named layers sharing one
// spatial extent.  It is the decoded form of a multi-band raster; reading and
// writing raster file formats is out of scope for this module.
type Grid struct {
	rows, cols int
	layers     []Layer
	index      map[string]int
}

// NewGrid constructs a Grid with the given extent and layers.  Every layer
// must carry exactly rows*cols cells and layer names must be unique.
func NewGrid(rows, cols int, layers ...Layer) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New(errors.ErrCodeGridExtentInvalid, "grid extent must be positive").
			WithDetail(fmt.Sprintf("rows=%d cols=%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols, index: make(map[string]int, len(layers))}
	for _, l := range layers {
		if l.Name == "" {
			return nil, errors.New(errors.ErrCodeValidation, "layer name must not be empty")
		}
		if _, dup := g.index[l.Name]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateColumn, "duplicate layer name").
				WithDetail("name=" + l.Name)
		}
		if len(l.Cells) != rows*cols {
			return nil, errors.New(errors.ErrCodeGridExtentInvalid, "layer size does not match grid extent").
				WithDetail(fmt.Sprintf("layer %q has %d cells, expected %d", l.Name, len(l.Cells), rows*cols))
		}
		g.index[l.Name] = len(g.layers)
		g.layers = append(g.layers, l)
	}
	return g, nil
}

// MustGrid is NewGrid that panics on error.  Intended for tests.
func MustGrid(rows, cols int, layers ...Layer) *Grid {
	g, err := NewGrid(rows, cols, layers...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// NumCells returns the total cell count (rows × cols).
func (g *Grid) NumCells() int { return g.rows * g.cols }

// Names returns the layer names in their order of appearance.
func (g *Grid) Names() []string {
	names := make([]string, len(g.layers))
	for i, l := range g.layers {
		names[i] = l.Name
	}
	return names
}

// Layer returns the cells of the named layer.  The returned slice is the
// grid's backing storage and must not be mutated.
func (g *Grid) Layer(name string) ([]float64, bool) {
	i, ok := g.index[name]
	if !ok {
		return nil, false
	}
	return g.layers[i].Cells, true
}
