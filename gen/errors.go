package gen

import "errors"

// ErrTooFew indicates a count, counter or edge parameter below 1.
var ErrTooFew = errors.New("gen: parameter too small")

// ErrNeedRandSource indicates that no RNG was configured; use WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("gen: rng is required")
