// Package prometheus implements the uncertainty core's Metrics interface on
// top of prometheus/client_golang.  All metrics carry the cast_uncertainty_
// prefix.
package prometheus

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pxuan19/CAST/pkg/uncertainty"
)

const metricsPrefix = "cast_uncertainty_"

// defaultDurationBuckets covers interactive table runs (milliseconds) through
// large-grid runs (minutes).
var defaultDurationBuckets = []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 15000, 60000, 300000}

// Collector is the prometheus-backed uncertainty.Metrics implementation.
type Collector struct {
	runsTotal           *prometheus.CounterVec
	runDuration         *prometheus.HistogramVec
	queryRowsTotal      prometheus.Counter
	clampedWeightsTotal prometheus.Counter
	lastReferenceRange  prometheus.Gauge
}

var _ uncertainty.Metrics = (*Collector)(nil)

// NewCollector creates the collector and registers every metric with the
// supplied Registerer (prometheus.DefaultRegisterer when nil).
func NewCollector(registerer prometheus.Registerer) (*Collector, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	c := &Collector{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "runs_total",
			Help: "Completed uncertainty computations by weight mode, shape, and degradation.",
		}, []string{"weight_mode", "shape", "degraded"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricsPrefix + "run_duration_milliseconds",
			Help:    "End-to-end duration of uncertainty computations.",
			Buckets: defaultDurationBuckets,
		}, []string{"shape"}),
		queryRowsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "query_rows_total",
			Help: "Total query observations scored.",
		}),
		clampedWeightsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "clamped_weights_total",
			Help: "Negative feature weights clamped to zero.",
		}),
		lastReferenceRange: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricsPrefix + "last_reference_range",
			Help: "Reference Range of the most recent computation.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.runsTotal, c.runDuration, c.queryRowsTotal, c.clampedWeightsTotal, c.lastReferenceRange,
	} {
		if err := registerer.Register(col); err != nil {
			return nil, fmt.Errorf("prometheus: failed to register collector: %w", err)
		}
	}
	return c, nil
}

// RecordComputation implements uncertainty.Metrics.
func (c *Collector) RecordComputation(_ context.Context, params *uncertainty.ComputationMetricParams) {
	if params == nil {
		return
	}
	shape := "tabular"
	if params.Gridded {
		shape = "gridded"
	}
	mode := "uniform"
	if params.Weighted {
		mode = "weighted"
	}
	c.runsTotal.WithLabelValues(mode, shape, strconv.FormatBool(params.Degraded)).Inc()
	c.runDuration.WithLabelValues(shape).Observe(params.DurationMs)
	c.queryRowsTotal.Add(float64(params.QueryRows))
	c.clampedWeightsTotal.Add(float64(params.ClampedWeights))
	c.lastReferenceRange.Set(params.ReferenceRange)
}
