package sparsevec

import "math"

// Options bundles the tunable numeric policy of a Vector. Fields are
// unexported; construct through DefaultOptions and the WithX functions.
type Options struct {
	// flushTolerance is the magnitude below which Saxpy flushes a freshly
	// computed entry to exact zero. Zero disables flushing.
	flushTolerance float64
}

// DefaultOptions returns the default policy: no flushing. The tolerance is
// deliberately caller-supplied — this package does not guess a magnitude.
func DefaultOptions() Options {
	return Options{flushTolerance: 0}
}

// Option mutates Options during construction.
type Option func(*Options)

// WithFlushTolerance sets the Saxpy flush threshold: a result with
// |value| < tol is stored as the element type's exact zero (the index stays
// tracked). tol must be a finite value >= 0; nonsensical values panic, since
// a wrong tolerance silently corrupts numeric results.
func WithFlushTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("sparsevec: flush tolerance must be finite and non-negative")
	}
	return func(o *Options) {
		o.flushTolerance = tol
	}
}
