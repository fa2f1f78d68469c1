package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/togglepath/cache"
	"github.com/katalvlaran/togglepath/config"
	"github.com/katalvlaran/togglepath/metrics"
	"github.com/katalvlaran/togglepath/puzzle"
	"github.com/katalvlaran/togglepath/solver"
)

var sample = []string{
	"[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}",
	"[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}",
	"[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}",
}

func testConfig(workers int) config.Config {
	cfg := config.Default()
	cfg.Workers = workers
	return cfg
}

func TestRun_Sample(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	for _, workers := range []int{1, 4} {
		s := solver.New(testConfig(workers), solver.WithLogger(zap.NewNop()))

		sum, err := s.Run(context.Background(), puzzle.Toggle, sample)
		require.NoError(t, err)
		require.NoError(t, sum.Err())
		require.Equal(t, 7, sum.Total)
		require.Len(t, sum.Answers, 3)
		require.Equal(t, []int{2, 3, 2}, []int{sum.Answers[0].Cost, sum.Answers[1].Cost, sum.Answers[2].Cost})
		require.NotEmpty(t, sum.RunID)

		sum, err = s.Run(context.Background(), puzzle.Counter, sample)
		require.NoError(t, err)
		require.Equal(t, 33, sum.Total)
		require.Equal(t, 2, sum.Answers[1].Line)
		require.Equal(t, 12, sum.Answers[1].Cost)
	}
}

func TestRun_Infeasible(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	lines := []string{
		"[#.] (0) {1,0}",
		"[.#] (0) {2,3}",
		"[##] (0,1) {2,3}",
	}
	s := solver.New(testConfig(2))

	sum, err := s.Run(context.Background(), puzzle.Toggle, lines)
	require.NoError(t, err)
	require.Equal(t, []int{2}, sum.Infeasible)
	require.Equal(t, 2, sum.Total)
	require.ErrorIs(t, sum.Err(), solver.ErrInfeasible)

	sum, err = s.Run(context.Background(), puzzle.Counter, lines)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, sum.Infeasible)
	require.Equal(t, 1, sum.Total)
}

func TestRun_ParseError(t *testing.T) {
	s := solver.New(testConfig(1))

	_, err := s.Run(context.Background(), puzzle.Counter, []string{sample[0], "[.#] (0"})
	require.ErrorIs(t, err, puzzle.ErrSyntax)
	require.Contains(t, err.Error(), "line 2")

	_, err = s.Run(context.Background(), puzzle.Counter, []string{"[.#] (0)"})
	require.ErrorIs(t, err, puzzle.ErrMissingTargets)
}

func TestRun_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.New(testConfig(2)).Run(ctx, puzzle.Counter, sample)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRun_CacheAndMetrics(t *testing.T) {
	store, err := cache.OpenInMemory(nil)
	require.NoError(t, err)
	defer store.Close()
	m := metrics.New(prometheus.NewRegistry())

	s := solver.New(testConfig(3), solver.WithCache(store), solver.WithMetrics(m))

	first, err := s.Run(context.Background(), puzzle.Counter, sample)
	require.NoError(t, err)
	for _, a := range first.Answers {
		require.False(t, a.Cached)
	}
	require.Equal(t, 3.0, testutil.ToFloat64(m.Instances.WithLabelValues("counter", "solved")))

	second, err := s.Run(context.Background(), puzzle.Counter, sample)
	require.NoError(t, err)
	require.Equal(t, first.Total, second.Total)
	for _, a := range second.Answers {
		require.True(t, a.Cached)
	}
	require.Equal(t, 3.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("counter")))

	// the toggle variant keeps its own entries
	sum, err := s.Run(context.Background(), puzzle.Toggle, sample)
	require.NoError(t, err)
	require.Equal(t, 7, sum.Total)
	require.False(t, sum.Answers[0].Cached)
}

func TestRun_ProgressLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := testConfig(1)
	cfg.ProgressEvery = 1

	_, err := solver.New(cfg, solver.WithLogger(zap.New(core))).Run(context.Background(), puzzle.Counter, sample[:1])
	require.NoError(t, err)

	require.NotZero(t, logs.FilterMessage("search progress").Len())
	require.Equal(t, 1, logs.FilterMessage("solving").Len())
	finished := logs.FilterMessage("run finished").All()
	require.Len(t, finished, 1)
	require.Equal(t, int64(10), finished[0].ContextMap()["total"])
}
