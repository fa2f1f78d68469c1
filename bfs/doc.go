// Package bfs solves the toggle variant of the switch-panel puzzle: find the
// fewest edge applications that turn the all-off light pattern into the
// target pattern of a core.ToggleGraph.
//
// What
//
//   - States are bit vectors (core.ToggleState); every edge flips a fixed subset
//     of bits and costs exactly 1.
//   - Returns a Result containing:
//   - Cost: the minimum number of edge applications
//   - Path: edge indices in application order (one optimal sequence)
//   - Expanded / Enqueued: search counters
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a new state enters the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxCost (c>0) or explicit "no limit" (c==0).
//
// Why breadth-first
//
//	All edges cost 1, so a FIFO frontier pops states in non-decreasing cost
//	order and is equivalent to a min-cost priority queue. The first time a state
//	is reached is therefore with its minimum cost, which allows marking it
//	visited on enqueue rather than on pop. Every edge stays available at every
//	state.
//
// Determinism
//
//	Edges are tried in graph order, so the visit sequence and the returned Path
//	are fully reproducible.
//
// Complexity (N = |lights|, M = |edges|)
//
//   - Time:   O(2^N · M · N) in the worst case
//   - Memory: O(2^N · N) for the visited set and the node arena
//
// Usage
//
//	res, err := bfs.Solve(g,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxCost(12),
//	)
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // target cannot be produced by any combination of edges
//	}
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxCost).
//   - ErrUnreachable     if the frontier empties before the target is popped.
//   - ctx.Err()          on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
