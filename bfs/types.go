// Package bfs provides tunable options and error definitions
// for the toggle-variant breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/togglepath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrUnreachable is returned when the frontier is exhausted before the
	// target state is reached.
	ErrUnreachable = errors.New("bfs: target state unreachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative cost limit), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state first enters the frontier.
	OnEnqueue func(s core.ToggleState, cost int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(s core.ToggleState, cost int)

	// OnVisit is called when visiting a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(s core.ToggleState, cost int) error

	// MaxCost, if > 0, stops expanding states at this cost.
	// A value of 0 disables the limit.
	MaxCost int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no cost limit (MaxCost == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(core.ToggleState, int) {},
		OnDequeue: func(core.ToggleState, int) {},
		OnVisit:   func(core.ToggleState, int) error { return nil },
		MaxCost:   0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s core.ToggleState, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s core.ToggleState, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(s core.ToggleState, cost int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxCost stops expanding states whose cost reached c.
//
//	c > 0: states at cost c are visited but not expanded
//	c == 0: explicit no limit
//	c < 0: invalid option → ErrOptionViolation
func WithMaxCost(c int) Option {
	return func(o *Options) {
		switch {
		case c < 0:
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
		default:
			o.MaxCost = c
		}
	}
}

// Result holds the outcome of a successful search:
//   - Cost: minimum number of edge applications.
//   - Path: edge indices in application order; len(Path) == Cost.
//   - Expanded: states whose successors were generated.
//   - Enqueued: states that entered the frontier, including the start.
type Result struct {
	Cost     int
	Path     []int
	Expanded int
	Enqueued int
}

// Replay applies Path to start and returns the resulting state.
func (r *Result) Replay(g *core.ToggleGraph, start core.ToggleState) core.ToggleState {
	s := start
	for _, ei := range r.Path {
		s = core.Toggle(s, g.Edges[ei])
	}

	return s
}
