// Package metrics exposes Prometheus collectors for puzzle runs.
//
// A *Metrics is fed two ways: the counter search reports progress through
// Observer, and the solver records one sample per finished instance. All
// collectors are safe for concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/togglepath/bestfirst"
	"github.com/katalvlaran/togglepath/puzzle"
)

const namespace = "togglepath"

// Outcome labels for Instances.
const (
	OutcomeSolved     = "solved"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

// Metrics holds the run collectors.
type Metrics struct {
	// Iterations counts counter-search node expansions seen by Observer.
	Iterations prometheus.Counter

	// Frontier is the frontier size at the last observed iteration.
	Frontier prometheus.Gauge

	// Bound is the cheapest known cost at the last observed iteration.
	Bound prometheus.Gauge

	// Instances counts finished instances.
	// Labels: variant (toggle, counter), outcome (solved, infeasible, error)
	Instances *prometheus.CounterVec

	// CacheHits counts instances answered from the result cache.
	// Labels: variant
	CacheHits *prometheus.CounterVec

	// SolveSeconds measures per-instance search time.
	// Labels: variant
	SolveSeconds *prometheus.HistogramVec
}

// New registers the collectors with reg. Use prometheus.NewRegistry in tests
// to keep them isolated.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Iterations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_iterations_total",
			Help:      "Counter-search iterations reported by the progress observer",
		}),
		Frontier: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_frontier_size",
			Help:      "Frontier size at the last observed iteration",
		}),
		Bound: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_bound",
			Help:      "Cheapest known cost at the last observed iteration",
		}),
		Instances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instances_total",
			Help:      "Finished instances by variant and outcome",
		}, []string{"variant", "outcome"}),
		CacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Instances answered from the result cache",
		}, []string{"variant"}),
		SolveSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Per-instance search time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		}, []string{"variant"}),
	}
}

// Observer returns a bestfirst observer for use with
// bestfirst.WithObserver(every, ...). Each call stands for `every` iterations.
func (m *Metrics) Observer(every int) func(bestfirst.Progress) {
	return func(p bestfirst.Progress) {
		m.Iterations.Add(float64(every))
		m.Frontier.Set(float64(p.Frontier))
		m.Bound.Set(float64(p.Bound))
	}
}

// RecordInstance records one finished instance.
func (m *Metrics) RecordInstance(v puzzle.Variant, outcome string, elapsed time.Duration) {
	m.Instances.WithLabelValues(v.String(), outcome).Inc()
	m.SolveSeconds.WithLabelValues(v.String()).Observe(elapsed.Seconds())
}

// RecordCacheHit records an instance answered from the cache.
func (m *Metrics) RecordCacheHit(v puzzle.Variant) {
	m.CacheHits.WithLabelValues(v.String()).Inc()
}
