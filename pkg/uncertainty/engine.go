package uncertainty

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/pxuan19/CAST/pkg/errors"
)

// ctxCheckStride is how many query rows a worker processes between context
// checks.  The distance loop itself has no blocking I/O, so the check only
// bounds how long a cancelled call keeps burning CPU.
const ctxCheckStride = 256

// minDistances computes, for every query row, the minimum Euclidean distance
// to any training row.  train and query are scaled-and-weighted row-major
// matrices of equal width.  workers selects the strategy: <=1 runs the
// sequential fold, larger values partition the query rows across a fixed
// pool of that many goroutines.  The training matrix is read-only and shared;
// every worker writes only its own contiguous segment of the output, so the
// result is order-stable regardless of completion order and both strategies
// return identical values.
func minDistances(ctx context.Context, train, query [][]float64, workers int) ([]float64, error) {
	out := make([]float64, len(query))
	if len(query) == 0 {
		return out, nil
	}
	if workers <= 1 {
		if err := minDistanceChunk(ctx, train, query, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	if workers > len(query) {
		workers = len(query)
	}
	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(query) + workers - 1) / workers
	for start := 0; start < len(query); start += chunk {
		end := start + chunk
		if end > len(query) {
			end = len(query)
		}
		start, end := start, end
		g.Go(func() error {
			return minDistanceChunk(gctx, train, query[start:end], out[start:end])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// minDistanceChunk folds the running minimum for one contiguous partition of
// query rows, writing into the matching slice of out.
func minDistanceChunk(ctx context.Context, train, query [][]float64, out []float64) error {
	for i, q := range query {
		if i%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "distance computation cancelled")
			}
		}
		best := math.Inf(1)
		for _, t := range train {
			if d := floats.Distance(q, t, 2); d < best {
				best = d
			}
		}
		out[i] = best
	}
	return nil
}
