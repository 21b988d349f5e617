package fit

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod is the minimizer used when WithMethod is not given.
	DefaultMethod = LevenbergMarquardt

	// DefaultMaxIterations bounds the number of major iterations.
	DefaultMaxIterations = 500

	// DefaultTolerance is the relative tolerance on the sum of squares and
	// on the step length (sqrt of double-precision epsilon).
	DefaultTolerance = 1.49012e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "fit: WithMaxIterations: n must be > 0"
	panicToleranceInvalid     = "fit: WithTolerance: tol must be finite and > 0"
	panicMethodInvalid        = "fit: WithMethod: unknown method"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	method        Method
	maxIterations int
	tolerance     float64
}

// WithMethod selects the minimizer.
func WithMethod(m Method) Option {
	if m < LevenbergMarquardt || m > NelderMead {
		panic(fmt.Sprintf("%s: %d", panicMethodInvalid, int(m)))
	}

	return func(o *Options) { o.method = m }
}

// WithMaxIterations bounds the number of major iterations (n > 0).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithTolerance sets the relative convergence tolerance (finite, > 0).
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		method:        DefaultMethod,
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
