package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/togglepath/core"
)

// node is one entry of the walker's arena. The FIFO queue is the arena
// suffix nodes[head:], because states are appended in enqueue order.
type node struct {
	state  core.ToggleState
	cost   int
	parent int // arena index of the predecessor; -1 for the start
	edge   int // edge applied from the predecessor; -1 for the start
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.ToggleGraph
	opts    Options
	ctx     context.Context
	nodes   []node
	head    int
	visited map[string]struct{}
	res     *Result
}

// Solve runs breadth-first search on g from the all-off state, applying any
// number of functional Options.
// Returns ErrGraphNil for invalid input, ErrOptionViolation for bad options,
// ErrUnreachable if no edge sequence produces the target, ctx.Err() on
// cancellation, or any user-supplied hook error.
func Solve(g *core.ToggleGraph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		nodes:   make([]node, 0, 64),
		visited: make(map[string]struct{}, 64),
		res:     &Result{},
	}

	// Seed queue with the start state (no parent)
	w.enqueue(g.Start(), 0, -1, -1)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks s visited, calls OnEnqueue and appends it to the arena.
func (w *walker) enqueue(s core.ToggleState, cost, parent, edge int) {
	w.visited[s.Key()] = struct{}{}
	w.opts.OnEnqueue(s, cost)
	w.nodes = append(w.nodes, node{state: s, cost: cost, parent: parent, edge: edge})
	w.res.Enqueued++
}

// loop processes the queue until the target is popped, the queue empties,
// an error occurs or the context is cancelled.
func (w *walker) loop() error {
	for w.head < len(w.nodes) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		idx := w.head
		w.head++
		n := w.nodes[idx]
		w.opts.OnDequeue(n.state, n.cost)
		if err := w.opts.OnVisit(n.state, n.cost); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", n.state, err)
		}

		if n.state.Equal(w.graph.Target) {
			w.res.Cost = n.cost
			w.res.Path = w.pathTo(idx)
			return nil
		}
		if w.opts.MaxCost > 0 && n.cost >= w.opts.MaxCost {
			continue
		}
		w.expand(idx, n)
	}

	return fmt.Errorf("%w: target %s from %d states", ErrUnreachable, w.graph.Target, w.res.Enqueued)
}

// expand applies every edge once to n and enqueues the unseen successors.
func (w *walker) expand(idx int, n node) {
	w.res.Expanded++
	for ei, e := range w.graph.Edges {
		next := core.Toggle(n.state, e)
		if _, seen := w.visited[next.Key()]; seen {
			continue
		}
		w.enqueue(next, n.cost+1, idx, ei)
	}
}

// pathTo walks parent links back to the start and returns the applied edges
// in forward order.
func (w *walker) pathTo(idx int) []int {
	path := make([]int, 0, w.nodes[idx].cost)
	for cur := idx; w.nodes[cur].parent >= 0; cur = w.nodes[cur].parent {
		path = append(path, w.nodes[cur].edge)
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
