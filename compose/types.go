package compose

import "errors"

// ErrTooManyCompositions is returned by Enumerate when the output exceeds the
// configured limit.
var ErrTooManyCompositions = errors.New("compose: composition limit exceeded")

// ErrBadLimit is the panic message of WithLimit for a negative limit.
var ErrBadLimit = errors.New("compose: limit must be non-negative")

// Options configures Enumerate.
type Options struct {
	// Limit caps the number of collected compositions; 0 means no cap.
	Limit int
}

// Option is a functional option for Enumerate.
type Option func(*Options)

// DefaultOptions returns Options with no cap.
func DefaultOptions() Options {
	return Options{Limit: 0}
}

// WithLimit caps the number of compositions Enumerate collects.
// Panics on a negative limit.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLimit.Error())
		}
		o.Limit = n
	}
}
