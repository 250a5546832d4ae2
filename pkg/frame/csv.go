package frame

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pxuan19/CAST/pkg/errors"
)

// missingTokens are cell values treated as missing (parsed to NaN) rather
// than disqualifying a column as non-numeric.
var missingTokens = map[string]bool{
	"": true, "na": true, "nan": true, "null": true,
}

// ReadCSV parses a feature table from CSV.  The first record is the header.
// Columns in which every non-missing cell parses as a float64 become feature
// columns; any other column (identifiers, labels, free text) is skipped
// entirely, matching the convention that a feature table may carry unrelated
// columns that are simply ignored.  Missing cells parse to NaN.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to parse CSV")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeSerialization, "CSV input is empty")
	}
	header := records[0]
	rows := records[1:]

	cols := make([]Column, 0, len(header))
	for j, name := range header {
		vals := make([]float64, 0, len(rows))
		numeric := true
		for _, rec := range rows {
			if j >= len(rec) {
				numeric = false
				break
			}
			cell := strings.TrimSpace(rec[j])
			if missingTokens[strings.ToLower(cell)] {
				vals = append(vals, math.NaN())
				continue
			}
			x, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				numeric = false
				break
			}
			vals = append(vals, x)
		}
		if numeric {
			cols = append(cols, Column{Name: name, Values: vals})
		}
	}
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrCodeSerialization, "CSV contains no numeric columns")
	}
	return NewTable(cols...)
}

// WriteVectorCSV writes a single named column of values as CSV with a header
// row.  NaN values are written as "NA".
func WriteVectorCSV(w io.Writer, name string, values []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{name}); err != nil {
		return errors.Wrap(err, errors.ErrCodeIO, "failed to write CSV header")
	}
	for _, v := range values {
		cell := "NA"
		if !math.IsNaN(v) {
			cell = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write([]string{cell}); err != nil {
			return errors.Wrap(err, errors.ErrCodeIO, "failed to write CSV row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.ErrCodeIO, "failed to flush CSV output")
	}
	return nil
}
