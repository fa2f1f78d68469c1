package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/togglepath/bestfirst"
	"github.com/katalvlaran/togglepath/bfs"
	"github.com/katalvlaran/togglepath/cache"
	"github.com/katalvlaran/togglepath/config"
	"github.com/katalvlaran/togglepath/core"
	"github.com/katalvlaran/togglepath/metrics"
	"github.com/katalvlaran/togglepath/puzzle"
)

// Solver orchestrates runs. It holds no per-run state and may be reused.
type Solver struct {
	cfg     config.Config
	log     *zap.Logger
	cache   *cache.Store
	metrics *metrics.Metrics
}

// New returns a Solver for cfg. cfg is expected to be validated.
func New(cfg config.Config, opts ...Option) *Solver {
	s := &Solver{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.Workers < 1 {
		s.cfg.Workers = 1
	}

	return s
}

// task is one parsed instance. Exactly one of toggle and counter is set.
type task struct {
	line    int
	toggle  *core.ToggleGraph
	counter *core.CounterGraph
}

func (t task) String() string {
	if t.toggle != nil {
		return t.toggle.String()
	}
	return t.counter.String()
}

// Run solves every line as variant v.
//
// Returns a parse error (wrapping the puzzle sentinels) for the first bad
// line, ctx.Err() on cancellation, and otherwise a Summary; infeasible
// instances are reported through Summary.Err, not as an error.
func (s *Solver) Run(ctx context.Context, v puzzle.Variant, lines []string) (*Summary, error) {
	began := time.Now()
	sum := &Summary{RunID: uuid.NewString(), Variant: v}
	log := s.log.With(zap.String("run_id", sum.RunID), zap.Stringer("variant", v))

	// 1) Parse everything first; a bad line is fatal for the run.
	tasks, err := parse(v, lines)
	if err != nil {
		return nil, err
	}
	log.Info("run started", zap.Int("instances", len(tasks)), zap.Int("workers", s.cfg.Workers))

	// 2) Solve concurrently; each worker writes only its own slot.
	sum.Answers = make([]Answer, len(tasks))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Workers)
	for i, t := range tasks {
		i, t := i, t
		eg.Go(func() error {
			a, err := s.solve(egCtx, log, v, t)
			if err != nil {
				return fmt.Errorf("line %d: %w", t.line, err)
			}
			sum.Answers[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3) Aggregate in input order.
	for _, a := range sum.Answers {
		if !a.Feasible {
			sum.Infeasible = append(sum.Infeasible, a.Line)
			continue
		}
		sum.Total += a.Cost
	}
	sum.Elapsed = time.Since(began)
	log.Info("run finished",
		zap.Int("total", sum.Total),
		zap.Ints("infeasible", sum.Infeasible),
		zap.Duration("elapsed", sum.Elapsed))

	return sum, nil
}

func parse(v puzzle.Variant, lines []string) ([]task, error) {
	tasks := make([]task, len(lines))
	for i, l := range lines {
		t := task{line: i + 1}
		var err error
		switch v {
		case puzzle.Toggle:
			t.toggle, err = puzzle.ParseToggle(l)
		default:
			t.counter, err = puzzle.ParseCounter(l)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		tasks[i] = t
	}

	return tasks, nil
}

// solve answers one instance from the cache or by searching.
func (s *Solver) solve(ctx context.Context, log *zap.Logger, v puzzle.Variant, t task) (Answer, error) {
	a := Answer{Line: t.line, Instance: t.String()}
	log = log.With(zap.Int("line", t.line))
	log.Debug("solving", zap.String("instance", a.Instance))

	if s.cache != nil {
		e, ok, err := s.cache.Get(v, a.Instance)
		if err != nil {
			log.Warn("cache lookup failed", zap.Error(err))
		} else if ok {
			a.Cost, a.Feasible, a.Cached = e.Cost, e.Feasible, true
			if s.metrics != nil {
				s.metrics.RecordCacheHit(v)
			}
			log.Debug("cache hit", zap.Int("cost", a.Cost), zap.Bool("feasible", a.Feasible))
			return a, nil
		}
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	began := time.Now()
	var err error
	if t.toggle != nil {
		err = s.solveToggle(ctx, t.toggle, &a)
	} else {
		err = s.solveCounter(ctx, log, t.counter, &a)
	}
	a.Elapsed = time.Since(began)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordInstance(v, metrics.OutcomeError, a.Elapsed)
		}
		return a, err
	}

	outcome := metrics.OutcomeSolved
	if !a.Feasible {
		outcome = metrics.OutcomeInfeasible
	}
	if s.metrics != nil {
		s.metrics.RecordInstance(v, outcome, a.Elapsed)
	}
	log.Debug("solved",
		zap.String("outcome", outcome),
		zap.Int("cost", a.Cost),
		zap.Duration("elapsed", a.Elapsed))

	if s.cache != nil {
		if err := s.cache.Put(v, a.Instance, cache.Entry{Cost: a.Cost, Feasible: a.Feasible}); err != nil {
			log.Warn("cache store failed", zap.Error(err))
		}
	}

	return a, nil
}

func (s *Solver) solveToggle(ctx context.Context, g *core.ToggleGraph, a *Answer) error {
	res, err := bfs.Solve(g, bfs.WithContext(ctx))
	switch {
	case errors.Is(err, bfs.ErrUnreachable):
		return nil
	case err != nil:
		return err
	}
	a.Cost, a.Feasible = res.Cost, true

	return nil
}

func (s *Solver) solveCounter(ctx context.Context, log *zap.Logger, g *core.CounterGraph, a *Answer) error {
	opts := []bestfirst.Option{
		bestfirst.WithContext(ctx),
		bestfirst.WithCapacityHint(s.cfg.CapacityHint),
	}
	if every := s.cfg.ProgressEvery; every > 0 {
		opts = append(opts, bestfirst.WithObserver(every, s.progress(log, every)))
	}

	res, err := bestfirst.Solve(g, opts...)
	if err != nil {
		return err
	}
	a.Cost, a.Feasible = res.Cost, res.Outcome == bestfirst.Solved

	return nil
}

// progress logs a search snapshot at Debug and forwards it to the metrics.
func (s *Solver) progress(log *zap.Logger, every int) func(bestfirst.Progress) {
	var sink func(bestfirst.Progress)
	if s.metrics != nil {
		sink = s.metrics.Observer(every)
	}

	return func(p bestfirst.Progress) {
		if ce := log.Check(zap.DebugLevel, "search progress"); ce != nil {
			ce.Write(
				zap.Int("iteration", p.Iteration),
				zap.Duration("elapsed", p.Elapsed),
				zap.Int("frontier", p.Frontier),
				zap.Int("cheapest", p.Bound),
				zap.Bool("found", p.Found),
				zap.Int("cost", p.Cost),
				zap.Stringer("state", p.State),
				zap.Stringer("remaining", p.Remaining),
			)
		}
		if sink != nil {
			sink(p)
		}
	}
}
