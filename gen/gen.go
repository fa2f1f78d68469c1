// Package gen draws random puzzle lines with planted solutions, for tests,
// benchmarks and the CLI's gen command.
//
// Every instance is feasible by construction: the generator first draws the
// edges, then a press set for the toggle variant and a repeat vector for the
// counter variant, and renders the states those produce as the targets.
// Planted costs are therefore upper bounds on the optimum.
//
// Determinism: for a fixed seed and options the output is identical across
// runs; draws happen in a fixed order (edges, presses, repeats).
package gen

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/togglepath/core"
)

// Instance is one generated line and the cost of the solution planted in it.
type Instance struct {
	Line           string
	TogglePlanted  int // edges pressed to produce the light pattern
	CounterPlanted int // total repeats that produce the counter targets
}

// Generate returns count instances.
func Generate(count int, opts ...Option) ([]Instance, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters before drawing anything.
	if count < 1 {
		return nil, fmt.Errorf("Generate: count=%d: %w", count, ErrTooFew)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}

	// 2) Draw instances in order.
	out := make([]Instance, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, cfg.instance())
	}

	return out, nil
}

// instance draws edges, a press set and a repeat vector.
func (c config) instance() Instance {
	edges := make([]core.Edge, c.edges)
	for i := range edges {
		edges[i] = c.edge()
	}

	lights := make(core.ToggleState, c.counters)
	pressed := 0
	for _, e := range edges {
		if c.rng.Intn(2) == 1 {
			lights = core.Toggle(lights, e)
			pressed++
		}
	}

	repeats := make([]int, len(edges))
	total := 0
	for i := range repeats {
		repeats[i] = c.rng.Intn(c.maxRepeat + 1)
		total += repeats[i]
	}
	targets := core.IncrementAll(make(core.CounterState, c.counters), edges, repeats)

	g := &core.CounterGraph{Target: targets, Edges: edges}

	return Instance{
		Line:           "[" + lights.String() + "] " + g.String(),
		TogglePlanted:  pressed,
		CounterPlanted: total,
	}
}

// edge draws 1..maxEdgeSize distinct indices, sorted ascending.
func (c config) edge() core.Edge {
	size := 1 + c.rng.Intn(c.maxEdgeSize)
	idx := c.rng.Perm(c.counters)[:size]
	sort.Ints(idx)

	return core.MustEdge(idx...)
}
