package bestfirst

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/togglepath/core"
)

// Sentinel errors returned by the counter search.
var (
	// ErrGraphNil indicates that a nil *core.CounterGraph was passed to Solve.
	ErrGraphNil = errors.New("bestfirst: graph is nil")

	// ErrInfeasible is returned by Result.Err for an Infeasible outcome.
	ErrInfeasible = errors.New("bestfirst: instance is infeasible")

	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("bestfirst: capacity hint must be non-negative")

	// ErrBadInterval indicates a non-positive observer interval.
	ErrBadInterval = errors.New("bestfirst: observer interval must be positive")
)

// Outcome distinguishes a solved instance from an infeasible one.
type Outcome int

const (
	// Solved means the target was reached; Result.Cost is the minimum found.
	Solved Outcome = iota

	// Infeasible means the frontier emptied without reaching the target.
	Infeasible
)

// String returns "solved" or "infeasible".
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	Outcome Outcome // Solved or Infeasible
	Cost    int     // minimum total repeats; 0 unless Solved

	Iterations int // nodes popped from the frontier
	Enqueued   int // nodes pushed, including the start
	Pruned     int // nodes discarded by the bound
	DeadEnds   int // nodes whose selected counter had no touching edge
	Elapsed    time.Duration
}

// Err returns ErrInfeasible for an Infeasible outcome and nil otherwise.
func (r *Result) Err() error {
	if r.Outcome == Infeasible {
		return ErrInfeasible
	}

	return nil
}

// Progress is the snapshot passed to an observer.
//
// State and Remaining belong to the search; observers must not modify them
// or retain them past the callback.
type Progress struct {
	Iteration int
	Frontier  int
	Bound     int
	Found     bool // whether Bound comes from a real solution
	Cost      int  // cost of the node being expanded
	State     core.CounterState
	Remaining core.EdgeSet
	Elapsed   time.Duration
}

// Options configures the counter search.
//
// Ctx          – cancellation, checked once per iteration.
// Observer     – optional progress callback.
// ObserveEvery – iterations between observer calls (> 0).
// CapacityHint – initial size of the visited set (≥ 0).
type Options struct {
	Ctx          context.Context
	Observer     func(Progress)
	ObserveEvery int
	CapacityHint int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultCapacityHint is the visited-set pre-size used when none is given.
const DefaultCapacityHint = 1 << 10

// DefaultOptions returns Options with a background context, no observer and
// DefaultCapacityHint.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Observer:     nil,
		ObserveEvery: 0,
		CapacityHint: DefaultCapacityHint,
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

// WithObserver registers fn to be called every `every` iterations.
// Panics if every is not positive.
func WithObserver(every int, fn func(Progress)) Option {
	return func(o *Options) {
		if every <= 0 {
			panic(ErrBadInterval.Error())
		}
		o.ObserveEvery = every
		o.Observer = fn
	}
}

// WithCapacityHint pre-sizes the visited set for n states.
// Panics on a negative n.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.CapacityHint = n
	}
}
