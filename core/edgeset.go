package core

import (
	"math/bits"
	"strconv"
	"strings"
)

const wordBits = 64

// EdgeSet is a set of indices into a graph's immutable edge slice.
//
// Search nodes carry an EdgeSet instead of their own copy of the edges. Sets are
// values and never mutated after construction; Partition returns fresh sets, so
// two nodes may share the same backing words safely.
type EdgeSet struct {
	words []uint64
}

// FullEdgeSet returns the set {0, 1, ..., n-1}.
func FullEdgeSet(n int) EdgeSet {
	if n <= 0 {
		return EdgeSet{}
	}
	words := make([]uint64, (n+wordBits-1)/wordBits)
	for i := range words {
		words[i] = ^uint64(0)
	}
	if rem := n % wordBits; rem != 0 {
		words[len(words)-1] = (uint64(1) << rem) - 1
	}

	return EdgeSet{words: words}
}

// EdgeSetOf returns the set containing exactly the given indices.
func EdgeSetOf(indices ...int) EdgeSet {
	hi := -1
	for _, i := range indices {
		if i > hi {
			hi = i
		}
	}
	if hi < 0 {
		return EdgeSet{}
	}
	words := make([]uint64, hi/wordBits+1)
	for _, i := range indices {
		words[i/wordBits] |= uint64(1) << (i % wordBits)
	}

	return EdgeSet{words: words}
}

// Has reports whether i is in the set.
func (s EdgeSet) Has(i int) bool {
	w := i / wordBits
	if i < 0 || w >= len(s.words) {
		return false
	}

	return s.words[w]&(uint64(1)<<(i%wordBits)) != 0
}

// Len returns the number of members.
func (s EdgeSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Empty reports whether the set has no members.
func (s EdgeSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Each calls fn for every member in ascending order.
func (s EdgeSet) Each(fn func(i int)) {
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(wi*wordBits + b)
			w &= w - 1
		}
	}
}

// Indices returns the members in ascending order.
func (s EdgeSet) Indices() []int {
	out := make([]int, 0, s.Len())
	s.Each(func(i int) { out = append(out, i) })

	return out
}

// Partition splits s into members satisfying keep and the rest.
func (s EdgeSet) Partition(keep func(i int) bool) (in, out EdgeSet) {
	in.words = make([]uint64, len(s.words))
	out.words = make([]uint64, len(s.words))
	s.Each(func(i int) {
		bit := uint64(1) << (i % wordBits)
		if keep(i) {
			in.words[i/wordBits] |= bit
		} else {
			out.words[i/wordBits] |= bit
		}
	})

	return in, out
}

// String renders the set as "{0,2,5}".
func (s EdgeSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(i int) {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(strconv.Itoa(i))
	})
	sb.WriteByte('}')

	return sb.String()
}
