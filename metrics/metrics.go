// Package metrics exposes Prometheus collectors for path enumeration, model
// construction and solving. Collectors are registered on a caller-supplied
// registry so tests and the CLI never touch the global default registry.
//
// A nil *Collector is valid and records nothing.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "teflow"

// ErrNilRegistry indicates New was called without a registry.
var ErrNilRegistry = errors.New("metrics: registry is nil")

// DefaultBuckets are the duration buckets (seconds) for build and solve histograms.
var DefaultBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120}

// Collector groups the teflow metrics.
//
// Thread Safety: all methods are safe for concurrent use.
type Collector struct {
	paths        prometheus.Gauge
	buildSeconds *prometheus.HistogramVec
	solveSeconds *prometheus.HistogramVec
	outcomes     *prometheus.CounterVec
	modelVars    *prometheus.GaugeVec
	modelRows    *prometheus.GaugeVec
	objective    *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	c := &Collector{
		paths: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "candidate_paths",
			Help:      "Number of candidate paths in the last enumerated catalogue.",
		}),
		buildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "build_duration_seconds",
			Help:      "Model construction time per variant.",
			Buckets:   DefaultBuckets,
		}, []string{"variant"}),
		solveSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solver wall-clock time per variant.",
			Buckets:   DefaultBuckets,
		}, []string{"variant"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solves_total",
			Help:      "Solver outcomes by variant and status.",
		}, []string{"variant", "status"}),
		modelVars: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "model_variables",
			Help:      "Number of decision variables of the last model per variant.",
		}, []string{"variant"}),
		modelRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "model_constraints",
			Help:      "Number of constraints of the last model per variant.",
		}, []string{"variant"}),
		objective: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "objective_value",
			Help:      "Optimal objective of the last solve per variant.",
		}, []string{"variant"}),
	}

	for _, col := range []prometheus.Collector{
		c.paths, c.buildSeconds, c.solveSeconds, c.outcomes, c.modelVars, c.modelRows, c.objective,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// SetPaths records the size of the path catalogue.
func (c *Collector) SetPaths(n int) {
	if c == nil {
		return
	}
	c.paths.Set(float64(n))
}

// ObserveBuild records one model construction.
func (c *Collector) ObserveBuild(variant string, d time.Duration, vars, constrs int) {
	if c == nil {
		return
	}
	c.buildSeconds.WithLabelValues(variant).Observe(d.Seconds())
	c.modelVars.WithLabelValues(variant).Set(float64(vars))
	c.modelRows.WithLabelValues(variant).Set(float64(constrs))
}

// ObserveSolve records one solver call. The objective gauge is updated only
// for optimal results.
func (c *Collector) ObserveSolve(variant, status string, d time.Duration, objective float64, optimal bool) {
	if c == nil {
		return
	}
	c.solveSeconds.WithLabelValues(variant).Observe(d.Seconds())
	c.outcomes.WithLabelValues(variant, status).Inc()
	if optimal {
		c.objective.WithLabelValues(variant).Set(objective)
	}
}
