package gen

import "math/rand"

// Option customizes generation by mutating a config before any instance is
// drawn. Constructors panic on meaningless inputs.
type Option func(*config)

// config aggregates the generator knobs. Passed by value.
type config struct {
	rng         *rand.Rand
	counters    int // state width
	edges       int // edges per instance
	maxEdgeSize int // upper bound on indices per edge
	maxRepeat   int // upper bound on a planted repeat count
}

const (
	defaultCounters  = 6
	defaultEdges     = 5
	defaultMaxRepeat = 8
)

// newConfig applies opts over deterministic defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		counters:  defaultCounters,
		edges:     defaultEdges,
		maxRepeat: defaultMaxRepeat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxEdgeSize <= 0 || cfg.maxEdgeSize > cfg.counters {
		cfg.maxEdgeSize = cfg.counters
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithCounters sets the state width. Panics if n < 1.
func WithCounters(n int) Option {
	if n < 1 {
		panic("gen: WithCounters(n < 1)")
	}
	return func(c *config) {
		c.counters = n
	}
}

// WithEdges sets the number of edges per instance. Panics if n < 1.
func WithEdges(n int) Option {
	if n < 1 {
		panic("gen: WithEdges(n < 1)")
	}
	return func(c *config) {
		c.edges = n
	}
}

// WithMaxEdgeSize caps the indices per edge; 0 means the state width.
// Panics if n < 0.
func WithMaxEdgeSize(n int) Option {
	if n < 0 {
		panic("gen: WithMaxEdgeSize(n < 0)")
	}
	return func(c *config) {
		c.maxEdgeSize = n
	}
}

// WithMaxRepeat caps each planted repeat count. Panics if n < 0.
func WithMaxRepeat(n int) Option {
	if n < 0 {
		panic("gen: WithMaxRepeat(n < 0)")
	}
	return func(c *config) {
		c.maxRepeat = n
	}
}
