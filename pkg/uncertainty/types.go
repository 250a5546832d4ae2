// Package uncertainty quantifies how dissimilar query observations are from a
// reference training set in a scaled, optionally weighted multivariate
// feature space.  For every query row it computes the minimum Euclidean
// distance to any training row and normalizes it by a reference range, so
// that values near 0 mean the query is well represented by the training data
// and values at or above 1 mean extrapolation beyond the training envelope.
package uncertainty

import (
	"context"
	"fmt"

	"github.com/pxuan19/CAST/pkg/frame"
)

// ─────────────────────────────────────────────────────────────────────────────
// Logger interface
// ─────────────────────────────────────────────────────────────────────────────

// Logger defines a structured logging interface compatible with zap or
// others.  The package never logs through a concrete library so that callers
// can inject whatever their application uses.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// NewNopLogger returns a Logger that discards all logs.
func NewNopLogger() Logger { return nopLogger{} }

// ─────────────────────────────────────────────────────────────────────────────
// Metrics interface
// ─────────────────────────────────────────────────────────────────────────────

// ComputationMetricParams carries the telemetry of a single Compute run.
type ComputationMetricParams struct {
	TrainingRows   int     `json:"training_rows"`
	QueryRows      int     `json:"query_rows"`
	Features       int     `json:"features"`
	Workers        int     `json:"workers"`
	Weighted       bool    `json:"weighted"`
	Degraded       bool    `json:"degraded"`
	Rescaled       bool    `json:"rescaled"`
	Gridded        bool    `json:"gridded"`
	ClampedWeights int     `json:"clamped_weights"`
	ReferenceRange float64 `json:"reference_range"`
	DurationMs     float64 `json:"duration_ms"`
}

// Metrics is the telemetry sink for uncertainty computations.  The concrete
// implementation (prometheus-backed, in-memory, noop) is injected by the
// caller so business code stays free of metric library imports.
type Metrics interface {
	RecordComputation(ctx context.Context, params *ComputationMetricParams)
}

type nopMetrics struct{}

func (nopMetrics) RecordComputation(context.Context, *ComputationMetricParams) {}

// NewNopMetrics returns a Metrics sink that discards all observations.
func NewNopMetrics() Metrics { return nopMetrics{} }

// ─────────────────────────────────────────────────────────────────────────────
// Notices — the non-fatal degradation trail
// ─────────────────────────────────────────────────────────────────────────────

// NoticeCode identifies a class of non-fatal anomaly encountered during a
// computation.  Notices are informational: computation always proceeds with a
// well-defined fallback, and no degraded path is ever taken silently.
type NoticeCode string

const (
	// NoticeWeightsUnavailable signals that a weight source was supplied but
	// could not be used; the run continued unweighted.
	NoticeWeightsUnavailable NoticeCode = "weights_unavailable"

	// NoticeNegativeWeightClamped signals that a negative feature weight was
	// clamped to zero.
	NoticeNegativeWeightClamped NoticeCode = "negative_weight_clamped"
)

// Notice is one recorded anomaly.
type Notice struct {
	Code    NoticeCode `json:"code"`
	Message string     `json:"message"`
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s", n.Code, n.Message)
}

// ─────────────────────────────────────────────────────────────────────────────
// Weight source — the external model-introspection collaborator
// ─────────────────────────────────────────────────────────────────────────────

// Importance is the raw feature-importance report of a fitted model.  Scores
// holds one row per class for multi-class classifiers and a single row for
// regression or binary models; every row is aligned positionally to Features.
type Importance struct {
	Features []string
	Scores   [][]float64
}

// ImportanceSource abstracts a fitted external model that can report
// per-feature importance scores.  Extraction is allowed to fail (wrong model
// family, capability missing, malformed output); failure is an expected,
// recoverable outcome that degrades the computation to uniform weights, never
// a propagated error.
type ImportanceSource interface {
	FeatureImportance() (*Importance, error)
}

// WeightMode records how the feature weights of a run were obtained.
type WeightMode int

const (
	// WeightUniform: every feature weighs 1 (no source, or a degraded source).
	WeightUniform WeightMode = iota
	// WeightExplicit: caller-supplied weight mapping.
	WeightExplicit
	// WeightModel: weights derived from a fitted model's importance scores.
	WeightModel
)

func (m WeightMode) String() string {
	switch m {
	case WeightUniform:
		return "uniform"
	case WeightExplicit:
		return "explicit"
	case WeightModel:
		return "model"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// WeightResolution is the explicit outcome of weight resolution.  Weight
// unavailability is modelled as data, not as an error: a resolution in
// uniform mode with a non-empty Reason means the supplied source was
// unusable and the run degraded.
type WeightResolution struct {
	// Mode records the effective weighting mode.
	Mode WeightMode

	// Features is the feature selection after narrowing to the names the
	// weight source actually covers (same silent-drop semantics as feature
	// selection itself).  In uniform mode it equals the input selection.
	Features []string

	// Weights is aligned positionally to Features; nil in uniform mode.
	Weights []float64

	// Reason explains the degradation when a source was supplied but Mode
	// ended up uniform.
	Reason string

	// Notices collects every anomaly encountered while resolving.
	Notices []Notice
}

// ─────────────────────────────────────────────────────────────────────────────
// Result
// ─────────────────────────────────────────────────────────────────────────────

// Result is the outcome of a Compute call.  Output matches the shape of the
// query input (vector for tabular, single-layer grid for gridded); the
// Reference Range is retained so callers can compare uncertainty magnitudes
// across runs.  When Rescaled is set the values were min-max rescaled to
// [0,1] instead and cross-run comparability is forfeited.
type Result struct {
	// RunID uniquely identifies this computation in logs and metrics.
	RunID string

	// Output holds the normalized minimum-distance values in the shape of
	// the query input.
	Output *frame.Output

	// ReferenceRange is the maximum plausible within-training distance used
	// as the normalization divisor (auto-computed or caller override).
	ReferenceRange float64

	// Rescaled reports whether the alternate [0,1] min-max mode was applied.
	Rescaled bool

	// Features is the resolved feature selection, in training order.
	Features []string

	// WeightMode and Weights record the effective weighting; Weights is nil
	// in uniform mode and aligned to Features otherwise.
	WeightMode WeightMode
	Weights    []float64

	// Notices is the full trail of non-fatal anomalies for the run.
	Notices []Notice
}

// Degraded reports whether the run fell back from a supplied weight source
// to uniform weights.
func (r *Result) Degraded() bool {
	for _, n := range r.Notices {
		if n.Code == NoticeWeightsUnavailable {
			return true
		}
	}
	return false
}
