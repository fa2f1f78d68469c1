package puzzle

import (
	"fmt"

	"github.com/katalvlaran/togglepath/core"
)

// ParseLine parses s into its parse tree without building a graph.
// Any lexing or grammar failure is reported as ErrSyntax.
func ParseLine(s string) (*Line, error) {
	l, err := parseLine.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return l, nil
}

// ParseToggle parses s into a toggle graph whose target is the light pattern.
func ParseToggle(s string) (*core.ToggleGraph, error) {
	l, err := ParseLine(s)
	if err != nil {
		return nil, err
	}
	if l.Pattern == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingPattern, s)
	}
	edges, err := l.edges()
	if err != nil {
		return nil, err
	}

	return core.NewToggleGraph(l.Pattern.lit(), edges)
}

// ParseCounter parses s into a counter graph whose target is the braced list.
func ParseCounter(s string) (*core.CounterGraph, error) {
	l, err := ParseLine(s)
	if err != nil {
		return nil, err
	}
	if l.Targets == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingTargets, s)
	}
	edges, err := l.edges()
	if err != nil {
		return nil, err
	}

	return core.NewCounterGraph(l.Targets.Values, edges)
}

// edges converts the parsed wires into core edges.
func (l *Line) edges() ([]core.Edge, error) {
	out := make([]core.Edge, 0, len(l.Edges))
	for i, w := range l.Edges {
		e, err := core.NewEdge(w.Indices...)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		out = append(out, e)
	}

	return out, nil
}
