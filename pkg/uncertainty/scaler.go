package uncertainty

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pxuan19/CAST/pkg/frame"
)

// fitDivisors computes the per-feature scale divisor from the training table:
// the sample standard deviation of each column.  Values are divided by the
// divisor but never mean-shifted; zero must stay a meaningful anchor so the
// reference range computed from the scaled gradient is interpretable.  A
// zero-spread column gets divisor 1 so the division is always defined.
func fitDivisors(train *frame.Table, features []string) []float64 {
	divisors := make([]float64, len(features))
	for j, name := range features {
		col, _ := train.Column(name)
		sd := stat.StdDev(col, nil)
		if sd == 0 {
			sd = 1
		}
		divisors[j] = sd
	}
	return divisors
}

// scaledMatrix materializes the named columns of a table as a row-major
// matrix with each column divided by its fitted divisor and, when weights is
// non-nil, multiplied by the resolved per-feature weight.  The divisors are
// always the ones fitted on the training set; query data is never re-fitted,
// which is what makes training and query distances comparable.
func scaledMatrix(t *frame.Table, features []string, divisors, weights []float64) ([][]float64, error) {
	rows, err := t.Rows(features)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for j := range row {
			row[j] /= divisors[j]
			if weights != nil {
				row[j] *= weights[j]
			}
		}
	}
	return rows, nil
}
