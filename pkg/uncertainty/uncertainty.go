package uncertainty

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pxuan19/CAST/pkg/errors"
	"github.com/pxuan19/CAST/pkg/frame"
)

// Compute runs the full uncertainty pipeline: shape adaptation, feature
// selection, weight resolution, scaling, minimum-distance search, and range
// normalization.  train is the reference feature table (at least two rows);
// query is the tabular or gridded data to score.  The result is shaped like
// the query input and carries the Reference Range plus the notice trail of
// every degraded path taken.
//
// Only malformed input is a fatal error.  An unusable weight source and
// negative weights degrade with notices; requested features absent from
// either table are silently dropped.
func Compute(ctx context.Context, train *frame.Table, query frame.Dataset, opts ...Option) (*Result, error) {
	cfg := defaultComputeConfig()
	for _, o := range opts {
		o(cfg)
	}

	if train == nil {
		return nil, errors.InvalidParam("training table must not be nil")
	}
	if train.NumRows() < 2 {
		return nil, errors.New(errors.ErrCodeTrainingTooSmall,
			"training set must contain at least 2 observations").
			WithDetail(fmt.Sprintf("got %d", train.NumRows()))
	}
	if cfg.workers < 0 {
		return nil, errors.New(errors.ErrCodeWorkersInvalid, "worker count must not be negative").
			WithDetail(fmt.Sprintf("got %d", cfg.workers))
	}
	if cfg.rangeOverride < 0 {
		return nil, errors.New(errors.ErrCodeRangeInvalid,
			"reference range override must not be negative (zero selects the auto-computed range)").
			WithDetail(fmt.Sprintf("got %g", cfg.rangeOverride))
	}

	if query == nil {
		return nil, errors.InvalidParam("query dataset must not be nil")
	}

	runID := uuid.NewString()
	log := cfg.logger
	start := time.Now()
	_, gridded := query.(frame.Gridded)

	// Feature Selector.  Resolved before any shape work so that columns or
	// layers outside the selection never influence NaN masking.
	selection := selectFeatures(train.Names(), query.Names(), cfg.features)

	// Weight Resolver; resolution may narrow the selection further.
	res := resolveWeights(selection, cfg)
	selection = res.Features
	for _, n := range res.Notices {
		log.Warn(n.Message, "run_id", runID, "notice", string(n.Code))
	}
	if len(selection) == 0 {
		return nil, errors.New(errors.ErrCodeNoUsableFeatures,
			"no usable features shared by training set, query set, and weight source")
	}
	if train.HasNaN(selection) {
		return nil, errors.New(errors.ErrCodeValidation,
			"training data contains missing values in selected features")
	}

	// Shape Adapter: flatten with the resolved selection; query rows or
	// cells with NaN in a selected feature are masked and restored as NaN.
	queryTable, restorer, err := frame.Flatten(query, selection)
	if err != nil {
		return nil, err
	}

	// Scaler: divisors fitted on training only, applied to both sides.
	divisors := fitDivisors(train, selection)
	trainM, err := scaledMatrix(train, selection, divisors, res.Weights)
	if err != nil {
		return nil, err
	}
	queryM, err := scaledMatrix(queryTable, selection, divisors, res.Weights)
	if err != nil {
		return nil, err
	}

	// Distance Engine.
	mins, err := minDistances(ctx, trainM, queryM, cfg.workers)
	if err != nil {
		return nil, err
	}

	// Range Normalizer.
	rng := cfg.rangeOverride
	if rng == 0 {
		rng = referenceRange(trainM)
	}
	normalizeByRange(mins, rng)
	if cfg.rescale {
		rescaleUnit(mins)
	}

	output, err := restorer.Restore(mins)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:          runID,
		Output:         output,
		ReferenceRange: rng,
		Rescaled:       cfg.rescale,
		Features:       selection,
		WeightMode:     res.Mode,
		Weights:        res.Weights,
		Notices:        res.Notices,
	}

	elapsed := time.Since(start)
	log.Info("uncertainty computation finished",
		"run_id", runID,
		"training_rows", train.NumRows(),
		"query_rows", queryTable.NumRows(),
		"features", len(selection),
		"weight_mode", res.Mode.String(),
		"workers", cfg.workers,
		"reference_range", rng,
		"duration_ms", float64(elapsed.Microseconds())/1000.0,
	)
	cfg.metrics.RecordComputation(ctx, &ComputationMetricParams{
		TrainingRows:   train.NumRows(),
		QueryRows:      queryTable.NumRows(),
		Features:       len(selection),
		Workers:        cfg.workers,
		Weighted:       res.Mode != WeightUniform,
		Degraded:       result.Degraded(),
		Rescaled:       cfg.rescale,
		Gridded:        gridded,
		ClampedWeights: countClamped(res.Notices),
		ReferenceRange: rng,
		DurationMs:     float64(elapsed.Microseconds()) / 1000.0,
	})

	return result, nil
}

func countClamped(notices []Notice) int {
	n := 0
	for _, notice := range notices {
		if notice.Code == NoticeNegativeWeightClamped {
			n++
		}
	}
	return n
}
