// Package core defines the switch-panel graph model shared by both search
// variants: edges, toggle and counter states, and the two graph shapes.
//
// Graphs are built once from parsed input and are read-only afterwards, so a
// single *ToggleGraph or *CounterGraph may be searched from many goroutines.
//
// Errors:
//
//	ErrEmptyEdge       - edge lists no indices.
//	ErrDuplicateIndex  - edge lists the same index twice.
//	ErrIndexOutOfRange - edge index falls outside the state vector.
//	ErrNegativeTarget  - counter target below zero.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyEdge indicates an edge that affects no state component.
	ErrEmptyEdge = errors.New("core: edge has no indices")

	// ErrDuplicateIndex indicates an edge that lists one index twice.
	ErrDuplicateIndex = errors.New("core: duplicate index in edge")

	// ErrIndexOutOfRange indicates an edge index outside [0, len(target)).
	ErrIndexOutOfRange = errors.New("core: edge index out of range")

	// ErrNegativeTarget indicates a negative counter target.
	ErrNegativeTarget = errors.New("core: negative counter target")
)

// Edge is an atomic operation over a fixed subset of state components.
//
// For a ToggleGraph applying an Edge flips each listed bit; for a CounterGraph
// applying it r times adds r to each listed counter. Index order is irrelevant.
type Edge struct {
	// Indices lists the state components this edge affects.
	Indices []int
}

// NewEdge returns an Edge over the given indices. The slice is copied.
func NewEdge(indices ...int) (Edge, error) {
	if len(indices) == 0 {
		return Edge{}, ErrEmptyEdge
	}
	own := make([]int, len(indices))
	copy(own, indices)
	e := Edge{Indices: own}
	if err := e.validate(-1); err != nil {
		return Edge{}, err
	}

	return e, nil
}

// MustEdge is like NewEdge but panics on invalid input.
// Intended for fixtures and examples.
func MustEdge(indices ...int) Edge {
	e, err := NewEdge(indices...)
	if err != nil {
		panic(err)
	}

	return e
}

// Touches reports whether the edge affects component i.
func (e Edge) Touches(i int) bool {
	for _, idx := range e.Indices {
		if idx == i {
			return true
		}
	}

	return false
}

// String renders the edge in puzzle notation, e.g. "(1,3)".
func (e Edge) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, idx := range e.Indices {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	sb.WriteByte(')')

	return sb.String()
}

// validate checks emptiness, duplicates and, when n >= 0, the index range.
func (e Edge) validate(n int) error {
	if len(e.Indices) == 0 {
		return ErrEmptyEdge
	}
	for i, idx := range e.Indices {
		if idx < 0 || (n >= 0 && idx >= n) {
			return fmt.Errorf("%w: index %d (n=%d)", ErrIndexOutOfRange, idx, n)
		}
		for _, prev := range e.Indices[:i] {
			if prev == idx {
				return fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
			}
		}
	}

	return nil
}

// ToggleGraph is the boolean variant: a target bit pattern and the edges that
// flip bits.
type ToggleGraph struct {
	Target ToggleState
	Edges  []Edge
}

// NewToggleGraph validates the edges against len(target) and returns a graph
// that owns copies of target and the edge slice.
func NewToggleGraph(target []bool, edges []Edge) (*ToggleGraph, error) {
	if err := validateEdges(len(target), edges); err != nil {
		return nil, err
	}
	g := &ToggleGraph{
		Target: make(ToggleState, len(target)),
		Edges:  make([]Edge, len(edges)),
	}
	copy(g.Target, target)
	copy(g.Edges, edges)

	return g, nil
}

// Start returns the all-false initial state.
func (g *ToggleGraph) Start() ToggleState {
	return make(ToggleState, len(g.Target))
}

// String renders the graph in puzzle notation without a counter target.
func (g *ToggleGraph) String() string {
	return strings.TrimSpace("[" + g.Target.String() + "] " + joinEdges(g.Edges))
}

// CounterGraph is the counter variant: per-counter targets and the edges that
// increment counters.
type CounterGraph struct {
	Target CounterState
	Edges  []Edge
}

// NewCounterGraph validates targets and edges and returns a graph that owns
// copies of both.
func NewCounterGraph(target []int, edges []Edge) (*CounterGraph, error) {
	for i, t := range target {
		if t < 0 {
			return nil, fmt.Errorf("%w: counter %d target %d", ErrNegativeTarget, i, t)
		}
	}
	if err := validateEdges(len(target), edges); err != nil {
		return nil, err
	}
	g := &CounterGraph{
		Target: make(CounterState, len(target)),
		Edges:  make([]Edge, len(edges)),
	}
	copy(g.Target, target)
	copy(g.Edges, edges)

	return g, nil
}

// Start returns the zero initial state.
func (g *CounterGraph) Start() CounterState {
	return make(CounterState, len(g.Target))
}

// AllEdges returns the set of every edge index in g.
func (g *CounterGraph) AllEdges() EdgeSet {
	return FullEdgeSet(len(g.Edges))
}

// Touching counts the edges in set that affect counter i.
func (g *CounterGraph) Touching(i int, set EdgeSet) int {
	n := 0
	set.Each(func(ei int) {
		if g.Edges[ei].Touches(i) {
			n++
		}
	})

	return n
}

// String renders the graph in puzzle notation without a light pattern.
func (g *CounterGraph) String() string {
	return strings.TrimSpace(joinEdges(g.Edges) + " " + g.Target.String())
}

func validateEdges(n int, edges []Edge) error {
	for i, e := range edges {
		if err := e.validate(n); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return nil
}

func joinEdges(edges []Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}

	return strings.Join(parts, " ")
}
