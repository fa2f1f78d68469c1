package bestfirst

import (
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/togglepath/compose"
	"github.com/katalvlaran/togglepath/core"
)

// Solve computes the minimum total repeat count that drives g's counters from
// zero to g.Target. It accepts functional options (WithContext, WithObserver,
// WithCapacityHint).
//
// Returns:
//
//   - res: Outcome Solved with Cost, or Infeasible, plus search counters.
//   - err: ErrGraphNil for a nil graph, ctx.Err() on cancellation.
//
// An Infeasible outcome is not an error; use res.Err() to convert it.
func Solve(g *core.CounterGraph, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 3) Prepare the runner: fresh visited set and frontier per instance.
	r := &runner{
		g:        g,
		options:  cfg,
		visited:  make(map[string]struct{}, cfg.CapacityHint),
		frontier: binaryheap.NewWith(byCostThenSeq),
		cheapest: g.Target.Sum(),
		res:      &Result{},
		began:    time.Now(),
	}

	// 4) Seed and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Resolve the outcome.
	r.res.Elapsed = time.Since(r.began)
	if r.found {
		r.res.Outcome = Solved
		r.res.Cost = r.cheapest
	} else {
		r.res.Outcome = Infeasible
	}

	return r.res, nil
}

// runner holds the mutable state for a single counter search.
type runner struct {
	g        *core.CounterGraph  // read-only input
	options  Options             // configuration
	visited  map[string]struct{} // keys of every state ever enqueued
	frontier *binaryheap.Heap    // min-heap of *searchNode
	seq      uint64              // insertion counter, tie-break in the heap
	cheapest int                 // global upper bound
	found    bool                // cheapest comes from a real solution
	res      *Result
	began    time.Time
	touching []core.Edge // scratch: edges touching the selected counter
}

// searchNode is one frontier entry. edges indexes into runner.g.Edges.
type searchNode struct {
	state core.CounterState
	cost  int
	edges core.EdgeSet
	seq   uint64
}

// byCostThenSeq orders nodes by ascending cost, then by insertion order.
func byCostThenSeq(a, b interface{}) int {
	x, y := a.(*searchNode), b.(*searchNode)
	switch {
	case x.cost < y.cost:
		return -1
	case x.cost > y.cost:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}

// init marks the zero state visited and pushes it with every edge available.
// A zero target is settled at cost 0 without searching.
func (r *runner) init() {
	start := r.g.Start()
	if start.Equal(r.g.Target) {
		r.settle(0)
		return
	}
	r.visited[start.Key()] = struct{}{}
	r.push(start, 0, r.g.AllEdges())
}

// push appends a node to the frontier.
func (r *runner) push(s core.CounterState, cost int, edges core.EdgeSet) {
	r.seq++
	r.frontier.Push(&searchNode{state: s, cost: cost, edges: edges, seq: r.seq})
	r.res.Enqueued++
}

// process is the main loop: pop the cheapest node, prune it against the bound
// or expand it, until the frontier is empty.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for !r.frontier.Empty() {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		v, _ := r.frontier.Pop()
		n := v.(*searchNode)
		r.res.Iterations++
		r.observe(n)

		// 1) Bound pruning: nothing below n can beat cheapest.
		if n.cost >= r.cheapest {
			r.res.Pruned++
			continue
		}

		// 2) Pick the most constrained unsatisfied counter.
		sel, touching := r.selectCounter(n)
		if sel < 0 {
			// Targets are settled on arrival and never enqueued.
			r.settle(n.cost)
			continue
		}
		if touching == 0 {
			r.res.DeadEnds++
			continue
		}

		// 3) Expand every safe composition over the touching edges.
		r.expand(n, sel)
	}

	return nil
}

// selectCounter returns the unsatisfied counter minimizing
// (touching edges, deficit), ties by lowest index, and its touching count.
// sel is -1 when every counter is at its target.
func (r *runner) selectCounter(n *searchNode) (sel, touching int) {
	sel = -1
	bestDeficit := 0
	for i, v := range n.state {
		deficit := r.g.Target[i] - v
		if deficit <= 0 {
			continue
		}
		c := r.g.Touching(i, n.edges)
		if sel < 0 || c < touching || (c == touching && deficit < bestDeficit) {
			sel, touching, bestDeficit = i, c, deficit
		}
	}

	return sel, touching
}

// expand partitions n's edges around counter sel and applies every safe
// composition of sel's deficit to the touching part. Descendants keep only
// the non-touching edges.
func (r *runner) expand(n *searchNode, sel int) {
	touch, rest := n.edges.Partition(func(ei int) bool {
		return r.g.Edges[ei].Touches(sel)
	})

	r.touching = r.touching[:0]
	touch.Each(func(ei int) { r.touching = append(r.touching, r.g.Edges[ei]) })

	need := r.g.Target[sel] - n.state[sel]
	compose.Each(need, r.touching, n.state, r.g.Target, func(repeats []int) bool {
		r.relax(n, repeats, rest)
		return true
	})
}

// relax applies one composition to n and either settles the bound, drops the
// successor, or enqueues it.
func (r *runner) relax(n *searchNode, repeats []int, rest core.EdgeSet) {
	next := core.IncrementAll(n.state, r.touching, repeats)
	if core.Overshoots(next, r.g.Target) {
		return
	}
	key := next.Key()
	if _, seen := r.visited[key]; seen {
		return
	}

	cost := n.cost + compose.Total(repeats)
	if next.Equal(r.g.Target) {
		r.settle(cost)
		return
	}
	r.visited[key] = struct{}{}
	r.push(next, cost, rest)
}

// settle records a solution of the given cost.
func (r *runner) settle(cost int) {
	if !r.found || cost < r.cheapest {
		r.cheapest = cost
	}
	r.found = true
}

// observe reports progress every ObserveEvery iterations.
func (r *runner) observe(n *searchNode) {
	if r.options.Observer == nil || r.res.Iterations%r.options.ObserveEvery != 0 {
		return
	}
	r.options.Observer(Progress{
		Iteration: r.res.Iterations,
		Frontier:  r.frontier.Size(),
		Bound:     r.cheapest,
		Found:     r.found,
		Cost:      n.cost,
		State:     n.state,
		Remaining: n.edges,
		Elapsed:   time.Since(r.began),
	})
}
