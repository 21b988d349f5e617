package model

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

const (
	opResolve = "Resolve"
	opParse   = "Parse"
)

// linear is f(x; a, b) = a*x + b.
func linear(x float64, p []float64) float64 { return p[0]*x + p[1] }

// linearGrad is (x, 1).
func linearGrad(x float64, _ []float64, dst []float64) {
	dst[0] = x
	dst[1] = 1
}

// exponential is f(x; a, b, c) = a*exp(-b*x) + c.
func exponential(x float64, p []float64) float64 { return p[0]*math.Exp(-p[1]*x) + p[2] }

// exponentialGrad is (e, -a*x*e, 1) with e = exp(-b*x).
func exponentialGrad(x float64, p []float64, dst []float64) {
	e := math.Exp(-p[1] * x)
	dst[0] = e
	dst[1] = -p[0] * x * e
	dst[2] = 1
}

// Resolve maps a Selector to a concrete Model.
//
// Behavior highlights:
//   - Linear → 2 parameters, Exponential → 3 parameters.
//   - Built-in shapes carry their analytic Grad; Custom has none.
//   - Custom → the caller's function unchanged; only nil-ness and n ≥ 1 are checked.
//   - NoFit → Model{Kind: KindNoFit} with no function.
//
// Errors:
//   - ErrInvalidModel for the zero Selector, a nil custom function or n < 1.
func Resolve(s Selector) (Model, error) {
	switch s.kind {
	case KindLinear:
		return Model{Kind: KindLinear, Func: linear, Grad: linearGrad, NumParams: 2}, nil
	case KindExponential:
		return Model{Kind: KindExponential, Func: exponential, Grad: exponentialGrad, NumParams: 3}, nil
	case KindNoFit:
		return Model{Kind: KindNoFit}, nil
	case KindCustom:
		if s.fn == nil {
			return Model{}, fmt.Errorf("%s: nil custom function: %w", opResolve, ErrInvalidModel)
		}
		if s.nParams < 1 {
			return Model{}, fmt.Errorf("%s: custom function needs >= 1 parameter, got %d: %w",
				opResolve, s.nParams, ErrInvalidModel)
		}

		return Model{Kind: KindCustom, Func: s.fn, NumParams: s.nParams}, nil
	default:
		return Model{}, fmt.Errorf("%s: %s: %w", opResolve, s.kind, ErrInvalidModel)
	}
}

var float64Type = reflect.TypeOf(float64(0))

// Parse turns a dynamic value into a Selector.
//
// Accepted values:
//   - Selector: returned unchanged.
//   - string: "linear", "exp"/"exponential", "none" (case-insensitive, trimmed).
//   - a Go function func(x, p1, ..., pn float64) float64 with n ≥ 1; the
//     parameter count is taken from its signature.
//
// A bare Func is rejected: its parameter count cannot be inferred, use Custom.
//
// Errors:
//   - ErrInvalidModel for anything else (unknown names, nil, numbers,
//     variadic functions, wrong argument or result types).
func Parse(v any) (Selector, error) {
	switch t := v.(type) {
	case Selector:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case NameLinear:
			return Linear(), nil
		case NameExponential, "exponential":
			return Exponential(), nil
		case NameNoFit:
			return NoFit(), nil
		}

		return Selector{}, fmt.Errorf("%s: unknown model %q: %w", opParse, t, ErrInvalidModel)
	case Func:
		return Selector{}, fmt.Errorf("%s: model.Func needs an explicit parameter count: %w", opParse, ErrInvalidModel)
	case nil:
		return Selector{}, fmt.Errorf("%s: nil: %w", opParse, ErrInvalidModel)
	}

	return parseFunc(v)
}

// parseFunc adapts func(float64, float64...) float64 via reflection.
func parseFunc(v any) (Selector, error) {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	if rt.Kind() != reflect.Func || rv.IsNil() {
		return Selector{}, fmt.Errorf("%s: %T is not a function: %w", opParse, v, ErrInvalidModel)
	}
	if rt.IsVariadic() || rt.NumIn() < 2 || rt.NumOut() != 1 || rt.Out(0) != float64Type {
		return Selector{}, fmt.Errorf("%s: %s does not match func(x, p1..pn float64) float64: %w",
			opParse, rt, ErrInvalidModel)
	}
	for i := 0; i < rt.NumIn(); i++ {
		if rt.In(i) != float64Type {
			return Selector{}, fmt.Errorf("%s: argument %d of %s is not float64: %w", opParse, i, rt, ErrInvalidModel)
		}
	}

	n := rt.NumIn() - 1
	fn := func(x float64, p []float64) float64 {
		args := make([]reflect.Value, n+1)
		args[0] = reflect.ValueOf(x)
		for i := 0; i < n; i++ {
			args[i+1] = reflect.ValueOf(p[i])
		}

		return rv.Call(args)[0].Float()
	}

	return Custom(fn, n), nil
}
