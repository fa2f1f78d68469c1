// Package togglepath solves switch-panel puzzles: find the fewest button
// presses that bring a panel from its all-off state to a target.
//
// Two variants share one graph model:
//
//	toggle   state is a bit vector; a press flips the bits of its edge;
//	         solved exactly by breadth-first search (package bfs).
//	counter  state is a vector of counters; a press adds one to each counter
//	         of its edge and no counter may pass its target; solved by a
//	         cost-bounded best-first search with composition enumeration
//	         and edge elimination (package bestfirst).
//
// Packages:
//
//	core/      edges, edge sets, states, graphs and the pure transitions
//	compose/   safe compositions of a deficit over the touching edges
//	bfs/       toggle search with path reconstruction
//	bestfirst/ counter search with a progress observer
//	puzzle/    line grammar: [.##.] (3) (1,3) ... {3,5,4,7}
//	input/     day<N>[_test|_test_b].txt loading
//	cache/     badger-backed memo of solved instances
//	metrics/   Prometheus collectors fed by searches and runs
//	config/    YAML/JSON file + TOGGLEPATH_* environment settings
//	solver/    concurrent per-run orchestration and summing
//	gen/       seeded random instances with planted solutions
//
// The command in cmd/togglepath wires these together:
//
//	togglepath solve --day 10 --part both
//	Solution to a: 7
//	Solution to b: 33
package togglepath
