package uncertainty

import (
	"gonum.org/v1/gonum/floats"
)

// referenceRange computes the default Reference Range of a scaled-and-weighted
// training matrix: the Euclidean distance between the per-feature maximum
// vector and the per-feature minimum vector.  It represents the full spread
// of the training gradient, the largest distance a query could have while
// still lying inside the observed envelope.
func referenceRange(train [][]float64) float64 {
	if len(train) == 0 || len(train[0]) == 0 {
		return 0
	}
	width := len(train[0])
	maxV := make([]float64, width)
	minV := make([]float64, width)
	copy(maxV, train[0])
	copy(minV, train[0])
	for _, row := range train[1:] {
		for j, v := range row {
			if v > maxV[j] {
				maxV[j] = v
			}
			if v < minV[j] {
				minV[j] = v
			}
		}
	}
	return floats.Distance(maxV, minV, 2)
}

// normalizeByRange divides every minimum distance by the reference range in
// place.  A range of 0 (a degenerate training matrix where every scaled cell
// is identical) leaves the distances untouched rather than dividing by zero;
// for such inputs every distance to an on-envelope query is 0 anyway.
func normalizeByRange(mins []float64, rng float64) {
	if rng == 0 {
		return
	}
	for i := range mins {
		mins[i] /= rng
	}
}

// rescaleUnit linearly rescales the values onto the closed interval [0,1]
// over the query rows (the alternate output mode).  A constant vector maps
// to all zeros.
func rescaleUnit(values []float64) {
	if len(values) == 0 {
		return
	}
	lo := floats.Min(values)
	hi := floats.Max(values)
	span := hi - lo
	if span == 0 {
		for i := range values {
			values[i] = 0
		}
		return
	}
	for i := range values {
		values[i] = (values[i] - lo) / span
	}
}
