// Package compose enumerates compositions: assignments of repeat counts to a
// group of counter edges that move one counter exactly to its target without
// pushing any counter those edges touch past its own target.
//
// For edges e_0..e_{k-1} touching the selected counter, each edge gets a bound
//
//	max_safe_i = min over counters c of e_i of (target[c] - current[c])
//
// and the enumerator yields every tuple (r_0, ..., r_{k-1}) with
// 0 <= r_i <= max_safe_i and r_0 + ... + r_{k-1} == need, in lexicographic
// order. The output can be combinatorially large, so Each streams tuples and
// Enumerate accepts a cap.
//
// The enumeration uses an explicit stack; depth is bounded by k, not by the
// size of the state space.
package compose

import (
	"fmt"

	"github.com/katalvlaran/togglepath/core"
)

// MaxSafe returns the largest repeat count e can take from current without
// any of its counters exceeding target. The result is never negative.
func MaxSafe(e core.Edge, current, target core.CounterState) int {
	if len(e.Indices) == 0 {
		return 0
	}
	best := -1
	for _, idx := range e.Indices {
		room := target[idx] - current[idx]
		if room < 0 {
			room = 0
		}
		if best < 0 || room < best {
			best = room
		}
	}

	return best
}

// Limits returns MaxSafe for every edge.
func Limits(edges []core.Edge, current, target core.CounterState) []int {
	limits := make([]int, len(edges))
	for i, e := range edges {
		limits[i] = MaxSafe(e, current, target)
	}

	return limits
}

// Each streams every safe composition of need over edges to fn.
//
// The slice passed to fn is reused between calls; copy it to retain it.
// Returning false from fn stops the enumeration. Zero edges or a negative need
// yield nothing. A single edge yields [need] only when need fits within its
// MaxSafe bound.
func Each(need int, edges []core.Edge, current, target core.CounterState, fn func(repeats []int) bool) {
	if len(edges) == 0 || need < 0 {
		return
	}
	EachBounded(need, Limits(edges, current, target), fn)
}

// EachBounded is Each over precomputed per-position upper bounds.
func EachBounded(need int, limits []int, fn func(repeats []int) bool) {
	k := len(limits)
	if k == 0 || need < 0 {
		return
	}
	comp := make([]int, k)
	if k == 1 {
		if need <= limits[0] {
			comp[0] = need
			fn(comp)
		}
		return
	}

	// rem[p] is what positions p..k-1 still have to absorb. Positions 0..k-2
	// are chosen from 0 upward; the last one takes whatever is left.
	last := k - 1
	rem := make([]int, k)
	rem[0] = need
	p := 0
	for p >= 0 {
		if comp[p] > min(rem[p], limits[p]) {
			comp[p] = 0
			p--
			if p >= 0 {
				comp[p]++
			}
			continue
		}
		left := rem[p] - comp[p]
		if p == last-1 {
			if left <= limits[last] {
				comp[last] = left
				if !fn(comp) {
					return
				}
			}
			comp[p]++
			continue
		}
		p++
		rem[p] = left
		comp[p] = 0
	}
}

// Enumerate collects every safe composition of need over edges.
//
// With WithLimit(n), at most n compositions are returned; if more exist the
// first n are returned together with ErrTooManyCompositions.
func Enumerate(need int, edges []core.Edge, current, target core.CounterState, opts ...Option) ([][]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		out      [][]int
		overflow bool
	)
	Each(need, edges, current, target, func(repeats []int) bool {
		if cfg.Limit > 0 && len(out) == cfg.Limit {
			overflow = true
			return false
		}
		cp := make([]int, len(repeats))
		copy(cp, repeats)
		out = append(out, cp)
		return true
	})
	if overflow {
		return out, fmt.Errorf("%w: more than %d for need=%d over %d edges",
			ErrTooManyCompositions, cfg.Limit, need, len(edges))
	}

	return out, nil
}

// Total returns the sum of a composition, i.e. the cost it adds.
func Total(repeats []int) int {
	sum := 0
	for _, r := range repeats {
		sum += r
	}

	return sum
}
