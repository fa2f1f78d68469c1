// Package solver runs one puzzle variant over a list of input lines.
//
// Run parses every line up front (a parse error aborts the run before any
// search starts), then solves the instances concurrently, at most
// config.Workers at a time, and sums the per-instance minimum costs. Each
// instance search is single-threaded and shares nothing with the others, so
// the total does not depend on scheduling.
//
// An optional badger cache (package cache) answers instances seen in earlier
// runs; optional Prometheus collectors (package metrics) receive progress and
// per-instance samples. All logging goes through zap with a per-run run_id.
package solver

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/togglepath/cache"
	"github.com/katalvlaran/togglepath/metrics"
	"github.com/katalvlaran/togglepath/puzzle"
)

// ErrInfeasible is returned by Summary.Err when any instance has no solution.
var ErrInfeasible = errors.New("solver: infeasible instances")

// Answer is the result for one input line.
type Answer struct {
	Line     int    // 1-based input position
	Instance string // canonical rendering, used as cache key
	Cost     int
	Feasible bool
	Cached   bool
	Elapsed  time.Duration
}

// Summary aggregates one run.
type Summary struct {
	RunID      string
	Variant    puzzle.Variant
	Total      int   // sum of costs over feasible instances
	Infeasible []int // 1-based lines without a solution
	Answers    []Answer
	Elapsed    time.Duration
}

// Err returns ErrInfeasible, listing the offending lines, when any instance
// was infeasible, and nil otherwise.
func (s *Summary) Err() error {
	if len(s.Infeasible) == 0 {
		return nil
	}

	return fmt.Errorf("%w: lines %v", ErrInfeasible, s.Infeasible)
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCache enables the result cache.
func WithCache(c *cache.Store) Option {
	return func(s *Solver) {
		s.cache = c
	}
}

// WithMetrics enables Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Solver) {
		s.metrics = m
	}
}
