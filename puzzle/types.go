// Package puzzle parses switch-panel puzzle lines into core graphs.
//
// A line carries up to three groups, in this order:
//
//	[.##.]            light pattern, '#' is on, '.' is off (toggle variant)
//	(3) (1,3) (2)     edges, each a parenthesised list of indices
//	{3,5,4,7}         counter targets (counter variant)
//
// Whitespace between tokens is free. The toggle variant needs the pattern and
// ignores the targets; the counter variant needs the targets and ignores the
// pattern.
//
// Errors:
//
//	ErrSyntax         - the line does not match the grammar.
//	ErrMissingPattern - a toggle instance has no [..] group.
//	ErrMissingTargets - a counter instance has no {..} group.
//
// Edge validation failures surface as the core sentinels (ErrIndexOutOfRange,
// ErrDuplicateIndex) wrapped with the offending edge position.
package puzzle

import "errors"

var (
	// ErrSyntax indicates a line that does not match the line grammar.
	ErrSyntax = errors.New("puzzle: syntax error")

	// ErrMissingPattern indicates a toggle line without a light pattern.
	ErrMissingPattern = errors.New("puzzle: missing light pattern")

	// ErrMissingTargets indicates a counter line without counter targets.
	ErrMissingTargets = errors.New("puzzle: missing counter targets")
)

// Variant selects which graph a line is turned into.
type Variant int

const (
	// Toggle is the boolean variant solved by package bfs.
	Toggle Variant = iota

	// Counter is the counter variant solved by package bestfirst.
	Counter
)

// String returns "toggle" or "counter".
func (v Variant) String() string {
	switch v {
	case Toggle:
		return "toggle"
	case Counter:
		return "counter"
	default:
		return "unknown"
	}
}

// ParseVariant maps "toggle"/"a" and "counter"/"b" to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "toggle", "a":
		return Toggle, true
	case "counter", "b":
		return Counter, true
	default:
		return 0, false
	}
}
