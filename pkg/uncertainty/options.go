package uncertainty

// computeConfig holds all tunables for a single Compute call.
type computeConfig struct {
	features      []string // nil means all training features
	weights       map[string]float64
	source        ImportanceSource
	rescale       bool
	rangeOverride float64 // 0 means auto-compute
	workers       int     // <=1 means sequential
	logger        Logger
	metrics       Metrics
}

func defaultComputeConfig() *computeConfig {
	return &computeConfig{
		workers: 1,
		logger:  NewNopLogger(),
		metrics: NewNopMetrics(),
	}
}

// Option configures a Compute call.
type Option func(*computeConfig)

// WithFeatures restricts the computation to the named features.  Names absent
// from the training or query set are silently dropped; the default (no call)
// uses every training feature.
func WithFeatures(names ...string) Option {
	return func(c *computeConfig) {
		c.features = append([]string(nil), names...)
	}
}

// WithWeights supplies an explicit feature-weight mapping.  Negative weights
// are clamped to zero with a notice.  Ignored when a model is also supplied
// via WithModel, which is then authoritative.
func WithWeights(weights map[string]float64) Option {
	return func(c *computeConfig) {
		c.weights = weights
	}
}

// WithModel supplies a fitted-model handle to derive feature weights from.
// If importance extraction fails the run degrades to uniform weights with a
// notice instead of failing.
func WithModel(src ImportanceSource) Option {
	return func(c *computeConfig) {
		c.source = src
	}
}

// WithRescale switches the output to the alternate mode that min-max
// rescales the normalized distances onto [0,1] over the query rows.  This
// forfeits cross-run comparability of magnitudes.
func WithRescale() Option {
	return func(c *computeConfig) {
		c.rescale = true
	}
}

// WithReferenceRange overrides the auto-computed Reference Range with an
// explicit positive value, used verbatim as the normalization divisor.
func WithReferenceRange(r float64) Option {
	return func(c *computeConfig) {
		c.rangeOverride = r
	}
}

// WithWorkers sets the size of the fixed worker pool used by the parallel
// distance strategy.  Values of 0 or 1 select the sequential strategy; both
// strategies produce identical results.
func WithWorkers(n int) Option {
	return func(c *computeConfig) {
		c.workers = n
	}
}

// WithLogger injects a logger.
func WithLogger(l Logger) Option {
	return func(c *computeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics injects a metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *computeConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}
