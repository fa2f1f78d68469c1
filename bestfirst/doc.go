// Package bestfirst solves the counter variant of the switch-panel puzzle:
// drive a vector of counters from zero to an exact target, where every edge
// adds a chosen repeat count to a fixed subset of counters, minimizing the
// total number of repeats and never overshooting any counter.
//
// Overview:
//
//   - Solve runs a cost-bounded best-first search over nodes
//     (state, cost, remaining edges), popped from a min-heap in ascending cost.
//   - A global bound, cheapest, starts at sum(target) and tightens whenever a
//     composition lands exactly on the target. Nodes whose cost reaches the
//     bound are discarded without expansion.
//   - Each expansion picks the most constrained unsatisfied counter: fewest
//     remaining touching edges, then smallest deficit, then lowest index. The
//     touching edges receive every safe composition of that deficit (package
//     compose), all at once; they are then removed for every descendant.
//   - A successor that overshoots or was already enqueued is dropped. One that
//     equals the target tightens the bound instead of being enqueued.
//
// Edge elimination:
//
//	Once a counter is settled, the edges touching it leave the node's EdgeSet
//	for good. This restricts the branching factor sharply; it is a structural
//	heuristic that matches the puzzle family rather than a generic optimality
//	guarantee. A selected counter with no touching edge left is a dead end and
//	the node is dropped.
//
// Outcomes:
//
//   - Solved:     a composition sequence reached the target; Cost is the bound.
//   - Infeasible: the frontier emptied without reaching the target.
//
// A zero target is Solved with cost 0 and no edges applied.
//
// Observability:
//
//	WithObserver(k, fn) calls fn every k iterations with a Progress snapshot
//	(iteration, frontier size, bound, current node). The search itself never
//	writes to any output.
//
// Memory:
//
//	The visited set and the frontier grow with the explored state space and
//	are the binding resource; WithCapacityHint pre-sizes the visited set.
//	Nodes share the graph's edges by index through core.EdgeSet instead of
//	copying them.
//
// Thread safety:
//
//   - Solve owns its frontier and visited set; concurrent Solve calls on the
//     same *core.CounterGraph are safe because the graph is read-only.
package bestfirst
