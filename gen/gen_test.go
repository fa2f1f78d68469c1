package gen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/togglepath/bestfirst"
	"github.com/katalvlaran/togglepath/bfs"
	"github.com/katalvlaran/togglepath/gen"
	"github.com/katalvlaran/togglepath/puzzle"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := gen.Generate(5, gen.WithSeed(42))
	require.NoError(t, err)
	b, err := gen.Generate(5, gen.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 5)
}

func TestGenerate_Errors(t *testing.T) {
	if _, err := gen.Generate(0, gen.WithSeed(1)); !errors.Is(err, gen.ErrTooFew) {
		t.Fatalf("want ErrTooFew, got %v", err)
	}
	if _, err := gen.Generate(1); !errors.Is(err, gen.ErrNeedRandSource) {
		t.Fatalf("want ErrNeedRandSource, got %v", err)
	}
	require.Panics(t, func() { gen.WithCounters(0) })
	require.Panics(t, func() { gen.WithEdges(0) })
	require.Panics(t, func() { gen.WithMaxRepeat(-1) })
	require.Panics(t, func() { gen.WithRand(nil) })
}

// TestGenerate_Toggle: BFS never does worse than the planted press set.
func TestGenerate_Toggle(t *testing.T) {
	insts, err := gen.Generate(20, gen.WithSeed(7), gen.WithCounters(7), gen.WithEdges(6))
	require.NoError(t, err)

	for _, in := range insts {
		g, err := puzzle.ParseToggle(in.Line)
		require.NoError(t, err, in.Line)
		require.Len(t, g.Target, 7)
		require.Len(t, g.Edges, 6)

		res, err := bfs.Solve(g)
		require.NoError(t, err, in.Line)
		require.LessOrEqual(t, res.Cost, in.TogglePlanted, in.Line)
		require.Len(t, res.Path, res.Cost)
		require.True(t, res.Replay(g, g.Start()).Equal(g.Target), in.Line)
	}
}

// TestGenerate_Counter: generated targets parse and solved costs stay within
// the trivial bounds.
func TestGenerate_Counter(t *testing.T) {
	insts, err := gen.Generate(10, gen.WithSeed(11), gen.WithCounters(4), gen.WithEdges(4), gen.WithMaxRepeat(5))
	require.NoError(t, err)

	for _, in := range insts {
		g, err := puzzle.ParseCounter(in.Line)
		require.NoError(t, err, in.Line)
		require.GreaterOrEqual(t, g.Target.Sum(), in.CounterPlanted, in.Line)

		res, err := bestfirst.Solve(g)
		require.NoError(t, err, in.Line)
		if res.Outcome != bestfirst.Solved {
			continue
		}
		hi := 0
		for _, v := range g.Target {
			hi = max(hi, v)
		}
		require.GreaterOrEqual(t, res.Cost, hi, in.Line)
		require.LessOrEqual(t, res.Cost, g.Target.Sum(), in.Line)
	}
}

func TestGenerate_EdgeSize(t *testing.T) {
	insts, err := gen.Generate(10, gen.WithSeed(3), gen.WithCounters(8), gen.WithMaxEdgeSize(2))
	require.NoError(t, err)
	for _, in := range insts {
		g, err := puzzle.ParseCounter(in.Line)
		require.NoError(t, err)
		for _, e := range g.Edges {
			require.LessOrEqual(t, len(e.Indices), 2)
		}
	}
}
