package core

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// ToggleState is a fixed-length bit vector. Its length equals the length of
// the graph target for the whole search.
type ToggleState []bool

// Equal reports whether s and o hold the same bits.
func (s ToggleState) Equal(o ToggleState) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Key packs the bits into a string suitable for use as a map key.
func (s ToggleState) Key() string {
	buf := make([]byte, (len(s)+7)/8)
	for i, on := range s {
		if on {
			buf[i/8] |= 1 << (i % 8)
		}
	}

	return string(buf)
}

// String renders the state in puzzle notation: '#' on, '.' off.
func (s ToggleState) String() string {
	buf := make([]byte, len(s))
	for i, on := range s {
		if on {
			buf[i] = '#'
		} else {
			buf[i] = '.'
		}
	}

	return string(buf)
}

// Toggle returns a copy of s with every bit listed by e flipped.
func Toggle(s ToggleState, e Edge) ToggleState {
	next := make(ToggleState, len(s))
	copy(next, s)
	for _, idx := range e.Indices {
		next[idx] = !next[idx]
	}

	return next
}

// CounterState is a fixed-length vector of non-negative counters.
type CounterState []int

// Equal reports whether s and o hold the same counters.
func (s CounterState) Equal(o CounterState) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Key encodes the counters as uvarints into a string suitable for use as a
// map key. Counters are assumed non-negative.
func (s CounterState) Key() string {
	buf := make([]byte, 0, len(s)*2)
	for _, v := range s {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// Sum returns the total of all counters.
func (s CounterState) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}

	return total
}

// String renders the state in puzzle notation, e.g. "{3,5,4,7}".
func (s CounterState) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// Increment returns a copy of s with r added to every counter listed by e.
// r must be non-negative.
func Increment(s CounterState, e Edge, r int) CounterState {
	next := make(CounterState, len(s))
	copy(next, s)
	for _, idx := range e.Indices {
		next[idx] += r
	}

	return next
}

// IncrementAll applies repeats[i] traversals of edges[i] for every i in one
// copy of s. len(repeats) must equal len(edges).
func IncrementAll(s CounterState, edges []Edge, repeats []int) CounterState {
	next := make(CounterState, len(s))
	copy(next, s)
	for i, e := range edges {
		r := repeats[i]
		if r == 0 {
			continue
		}
		for _, idx := range e.Indices {
			next[idx] += r
		}
	}

	return next
}

// Overshoots reports whether any counter of s exceeds its target.
func Overshoots(s, target CounterState) bool {
	for i, v := range s {
		if v > target[i] {
			return true
		}
	}

	return false
}
