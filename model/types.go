package model

import "errors"

// ErrInvalidModel indicates the selector is neither a known shape, the
// no-fit sentinel nor a usable caller-supplied function.
var ErrInvalidModel = errors.New("model: invalid model selector")

// Kind tags the closed set of selector variants. The zero value is invalid.
type Kind int

const (
	kindInvalid Kind = iota

	// KindLinear selects f(x; a, b) = a*x + b.
	KindLinear

	// KindExponential selects f(x; a, b, c) = a*exp(-b*x) + c.
	KindExponential

	// KindNoFit skips fitting and curve drawing entirely.
	KindNoFit

	// KindCustom carries a caller function and its parameter count.
	KindCustom
)

// String returns the canonical selector name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return NameLinear
	case KindExponential:
		return NameExponential
	case KindNoFit:
		return NameNoFit
	case KindCustom:
		return "custom"
	default:
		return "invalid"
	}
}

// Canonical names accepted by Parse (case-insensitive).
const (
	NameLinear      = "linear"
	NameExponential = "exp"
	NameNoFit       = "none"
)

// Func evaluates a model at x for the parameter vector p.
// Implementations must not retain or mutate p.
type Func func(x float64, p []float64) float64

// Grad writes ∂f(x; p)/∂p_j into dst[j] for every parameter.
// len(dst) == len(p); implementations must not retain either slice.
type Grad func(x float64, p, dst []float64)

// Selector is the caller's choice of model shape.
// Build one with Linear, Exponential, NoFit, Custom or Parse.
type Selector struct {
	kind    Kind
	fn      Func
	nParams int
}

// Linear selects the straight line a*x + b.
func Linear() Selector { return Selector{kind: KindLinear} }

// Exponential selects the single-exponential a*exp(-b*x) + c.
func Exponential() Selector { return Selector{kind: KindExponential} }

// NoFit selects "no curve": data markers only.
func NoFit() Selector { return Selector{kind: KindNoFit} }

// Custom selects a caller-supplied model with nParams parameters.
// Validation happens in Resolve.
func Custom(fn Func, nParams int) Selector {
	return Selector{kind: KindCustom, fn: fn, nParams: nParams}
}

// Kind reports the selector variant.
func (s Selector) Kind() Kind { return s.kind }

// String returns the variant name.
func (s Selector) String() string { return s.kind.String() }

// Model is a resolved selector: a callable with a known parameter count.
// For NoFit, Func is nil and NumParams is 0.
// Grad is set for the built-in shapes only; callers fall back to
// finite differences when it is nil.
type Model struct {
	Kind      Kind
	Func      Func
	Grad      Grad
	NumParams int
}

// IsNone reports whether the model is the no-curve sentinel.
func (m Model) IsNone() bool { return m.Kind == KindNoFit }

// Eval evaluates the model over every x. It returns nil for NoFit.
func (m Model) Eval(xs []float64, p []float64) []float64 {
	if m.Func == nil {
		return nil
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Func(x, p)
	}

	return out
}
