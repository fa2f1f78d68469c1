package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/togglepath/bestfirst"
	"github.com/katalvlaran/togglepath/core"
	"github.com/katalvlaran/togglepath/metrics"
	"github.com/katalvlaran/togglepath/puzzle"
)

func newTestMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	return metrics.New(prometheus.NewRegistry())
}

func TestRecordInstance(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordInstance(puzzle.Counter, metrics.OutcomeSolved, 3*time.Millisecond)
	m.RecordInstance(puzzle.Counter, metrics.OutcomeSolved, time.Millisecond)
	m.RecordInstance(puzzle.Toggle, metrics.OutcomeInfeasible, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.Instances.WithLabelValues("counter", "solved")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Instances.WithLabelValues("toggle", "infeasible")))
	require.Equal(t, 2, testutil.CollectAndCount(m.SolveSeconds))
}

func TestRecordCacheHit(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordCacheHit(puzzle.Toggle)
	require.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("toggle")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("counter")))
}

func TestObserver(t *testing.T) {
	m := newTestMetrics(t)

	g, err := core.NewCounterGraph(
		[]int{10, 11, 11, 5, 10, 5},
		[]core.Edge{
			core.MustEdge(0, 1, 2, 3, 4),
			core.MustEdge(0, 3, 4),
			core.MustEdge(0, 1, 2, 4, 5),
			core.MustEdge(1, 2),
		},
	)
	require.NoError(t, err)

	res, err := bestfirst.Solve(g, bestfirst.WithObserver(1, m.Observer(1)))
	require.NoError(t, err)
	require.Equal(t, 11, res.Cost)

	require.Equal(t, float64(res.Iterations), testutil.ToFloat64(m.Iterations))
	require.GreaterOrEqual(t, testutil.ToFloat64(m.Bound), 11.0)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}
