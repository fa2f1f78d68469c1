package bestfirst_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/togglepath/bestfirst"
	"github.com/katalvlaran/togglepath/core"
)

// BestFirstSuite exercises the counter search.
type BestFirstSuite struct {
	suite.Suite
}

func TestBestFirstSuite(t *testing.T) {
	suite.Run(t, new(BestFirstSuite))
}

func (s *BestFirstSuite) graph(target []int, edges ...[]int) *core.CounterGraph {
	es := make([]core.Edge, len(edges))
	for i, idx := range edges {
		es[i] = core.MustEdge(idx...)
	}
	g, err := core.NewCounterGraph(target, es)
	s.Require().NoError(err)
	return g
}

// TestSample reproduces the per-line minimums 10, 12, 11 (total 33).
func (s *BestFirstSuite) TestSample() {
	graphs := []*core.CounterGraph{
		s.graph([]int{3, 5, 4, 7}, []int{3}, []int{1, 3}, []int{2}, []int{2, 3}, []int{0, 2}, []int{0, 1}),
		s.graph([]int{7, 5, 12, 7, 2}, []int{0, 2, 3, 4}, []int{2, 3}, []int{0, 4}, []int{0, 1, 2}, []int{1, 2, 3, 4}),
		s.graph([]int{10, 11, 11, 5, 10, 5}, []int{0, 1, 2, 3, 4}, []int{0, 3, 4}, []int{0, 1, 2, 4, 5}, []int{1, 2}),
	}
	want := []int{10, 12, 11}

	total := 0
	for i, g := range graphs {
		res, err := bestfirst.Solve(g)
		s.Require().NoError(err, "line %d", i)
		s.Require().Equal(bestfirst.Solved, res.Outcome, "line %d", i)
		s.Equal(want[i], res.Cost, "line %d", i)
		s.NoError(res.Err())
		total += res.Cost
	}
	s.Equal(33, total)
}

// TestZeroTarget is solved at cost 0 without enqueuing anything.
func (s *BestFirstSuite) TestZeroTarget() {
	res, err := bestfirst.Solve(s.graph([]int{0, 0, 0}, []int{0, 1}, []int{2}))
	s.Require().NoError(err)
	s.Equal(bestfirst.Solved, res.Outcome)
	s.Equal(0, res.Cost)
	s.Equal(0, res.Enqueued)
}

// TestSmall checks a hand-solvable instance: (0,1) covers both counters at once.
func (s *BestFirstSuite) TestSmall() {
	res, err := bestfirst.Solve(s.graph([]int{3, 3}, []int{0}, []int{0, 1}, []int{1}))
	s.Require().NoError(err)
	s.Equal(bestfirst.Solved, res.Outcome)
	s.Equal(3, res.Cost)
}

// TestInfeasible_Unbalanced: a single shared edge can never produce {2,3}.
func (s *BestFirstSuite) TestInfeasible_Unbalanced() {
	res, err := bestfirst.Solve(s.graph([]int{2, 3}, []int{0, 1}))
	s.Require().NoError(err)
	s.Equal(bestfirst.Infeasible, res.Outcome)
	s.Equal(0, res.Cost)
	s.ErrorIs(res.Err(), bestfirst.ErrInfeasible)
}

// TestInfeasible_Untouched: counter 0 has no edge at all, a dead end at the start.
func (s *BestFirstSuite) TestInfeasible_Untouched() {
	res, err := bestfirst.Solve(s.graph([]int{1, 2}, []int{1}))
	s.Require().NoError(err)
	s.Equal(bestfirst.Infeasible, res.Outcome)
	s.Equal(1, res.DeadEnds)
}

// TestObserver fires on every k-th iteration with a consistent snapshot.
func (s *BestFirstSuite) TestObserver() {
	g := s.graph([]int{7, 5, 12, 7, 2}, []int{0, 2, 3, 4}, []int{2, 3}, []int{0, 4}, []int{0, 1, 2}, []int{1, 2, 3, 4})

	var seen []bestfirst.Progress
	res, err := bestfirst.Solve(g, bestfirst.WithObserver(2, func(p bestfirst.Progress) {
		seen = append(seen, p)
	}))
	s.Require().NoError(err)
	s.Len(seen, res.Iterations/2)
	for i, p := range seen {
		s.Equal(2*(i+1), p.Iteration)
		s.LessOrEqual(p.Bound, g.Target.Sum())
		s.Len(p.State, len(g.Target))
		s.False(core.Overshoots(p.State, g.Target))
	}
}

// TestOptions covers validation panics and cancellation.
func (s *BestFirstSuite) TestOptions() {
	g := s.graph([]int{3, 3}, []int{0}, []int{0, 1}, []int{1})

	s.Panics(func() { _, _ = bestfirst.Solve(g, bestfirst.WithObserver(0, func(bestfirst.Progress) {})) })
	s.Panics(func() { _, _ = bestfirst.Solve(g, bestfirst.WithCapacityHint(-1)) })

	_, err := bestfirst.Solve(nil)
	s.ErrorIs(err, bestfirst.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bestfirst.Solve(g, bestfirst.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

// TestCostBounds: any solved cost lies between the largest target and the sum.
func TestCostBounds(t *testing.T) {
	cases := []struct {
		target []int
		edges  [][]int
	}{
		{[]int{4, 4, 4}, [][]int{{0, 1, 2}, {0}, {1}, {2}}},
		{[]int{2, 5, 3}, [][]int{{0, 1}, {1, 2}, {1}}},
		{[]int{6, 1, 6}, [][]int{{0, 2}, {1}, {0}, {2}, {0, 1, 2}}},
	}
	for _, tc := range cases {
		es := make([]core.Edge, len(tc.edges))
		for i, idx := range tc.edges {
			es[i] = core.MustEdge(idx...)
		}
		g, err := core.NewCounterGraph(tc.target, es)
		require.NoError(t, err)

		res, err := bestfirst.Solve(g, bestfirst.WithCapacityHint(0))
		require.NoError(t, err)
		require.Equal(t, bestfirst.Solved, res.Outcome, "%v", g)

		hi := 0
		for _, v := range tc.target {
			hi = max(hi, v)
		}
		require.GreaterOrEqual(t, res.Cost, hi, "%v", g)
		require.LessOrEqual(t, res.Cost, g.Target.Sum(), "%v", g)
	}
}
