package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_BuiltIns checks shapes and parameter counts of the built-in models.
func TestResolve_BuiltIns(t *testing.T) {
	lin, err := model.Resolve(model.Linear())
	require.NoError(t, err)
	assert.Equal(t, 2, lin.NumParams)
	assert.Equal(t, 7.0, lin.Func(3, []float64{2, 1}), "2*3+1")

	exp, err := model.Resolve(model.Exponential())
	require.NoError(t, err)
	assert.Equal(t, 3, exp.NumParams)
	assert.InDelta(t, 5*math.Exp(-1)+1, exp.Func(2, []float64{5, 0.5, 1}), 1e-15)
}

// TestResolve_GradMatchesDifferences compares the analytic partials of the
// built-in shapes with central differences.
func TestResolve_GradMatchesDifferences(t *testing.T) {
	const h = 1e-6
	for _, sel := range []model.Selector{model.Linear(), model.Exponential()} {
		m, err := model.Resolve(sel)
		require.NoError(t, err)
		require.NotNil(t, m.Grad, sel.String())

		p := []float64{1.5, 0.3, -2}[:m.NumParams]
		dst := make([]float64, m.NumParams)
		for _, x := range []float64{-2, 0, 0.5, 4} {
			m.Grad(x, p, dst)
			for j := range p {
				hi := append([]float64(nil), p...)
				lo := append([]float64(nil), p...)
				hi[j] += h
				lo[j] -= h
				want := (m.Func(x, hi) - m.Func(x, lo)) / (2 * h)
				assert.InDelta(t, want, dst[j], 1e-6, "%s x=%g p%d", sel, x, j)
			}
		}
	}

	custom, err := model.Resolve(model.Custom(func(x float64, p []float64) float64 { return p[0] }, 1))
	require.NoError(t, err)
	assert.Nil(t, custom.Grad)
}

// TestResolve_NoFit returns the no-curve sentinel.
func TestResolve_NoFit(t *testing.T) {
	m, err := model.Resolve(model.NoFit())
	require.NoError(t, err)
	assert.True(t, m.IsNone())
	assert.Nil(t, m.Func)
	assert.Zero(t, m.NumParams)
	assert.Nil(t, m.Eval([]float64{1, 2}, nil))
}

// TestResolve_CustomUnchanged passes the caller function through untouched.
func TestResolve_CustomUnchanged(t *testing.T) {
	calls := 0
	fn := func(x float64, p []float64) float64 { calls++; return p[0] * x * x }

	m, err := model.Resolve(model.Custom(fn, 1))
	require.NoError(t, err)
	assert.Equal(t, model.KindCustom, m.Kind)
	assert.Equal(t, []float64{2, 8}, m.Eval([]float64{1, 2}, []float64{2}))
	assert.Equal(t, 2, calls)
}

// TestResolve_Invalid covers the zero selector and malformed custom selectors.
func TestResolve_Invalid(t *testing.T) {
	cases := map[string]model.Selector{
		"zero":      {},
		"nil func":  model.Custom(nil, 2),
		"no params": model.Custom(func(float64, []float64) float64 { return 0 }, 0),
	}
	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := model.Resolve(sel)
			assert.ErrorIs(t, err, model.ErrInvalidModel)
		})
	}
}

// TestParse_Names accepts the canonical names regardless of case and padding.
func TestParse_Names(t *testing.T) {
	cases := map[string]model.Kind{
		"linear":      model.KindLinear,
		" Linear ":    model.KindLinear,
		"exp":         model.KindExponential,
		"EXPONENTIAL": model.KindExponential,
		"none":        model.KindNoFit,
		"None":        model.KindNoFit,
	}
	for in, want := range cases {
		sel, err := model.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, sel.Kind(), in)
	}
}

// TestParse_GoFunc infers the parameter count from a plain Go function.
func TestParse_GoFunc(t *testing.T) {
	sel, err := model.Parse(func(x, a, b float64) float64 { return a*x + b })
	require.NoError(t, err)
	assert.Equal(t, model.KindCustom, sel.Kind())

	m, err := model.Resolve(sel)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumParams)
	assert.Equal(t, 11.0, m.Func(5, []float64{2, 1}))
}

// TestParse_Invalid rejects everything that is not a name, sentinel or model function.
func TestParse_Invalid(t *testing.T) {
	cases := map[string]any{
		"nil":           nil,
		"unknown name":  "quadratic",
		"number":        42,
		"list":          []string{"linear"},
		"bare Func":     model.Func(func(float64, []float64) float64 { return 0 }),
		"slice params":  func(x float64, p []float64) float64 { return 0 },
		"no params":     func(x float64) float64 { return x },
		"variadic":      func(x float64, p ...float64) float64 { return 0 },
		"int result":    func(x, a float64) int { return 0 },
		"two results":   func(x, a float64) (float64, error) { return 0, nil },
		"int parameter": func(x float64, n int) float64 { return 0 },
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := model.Parse(v)
			assert.ErrorIs(t, err, model.ErrInvalidModel)
		})
	}
}

// TestParse_Selector passes typed selectors straight through.
func TestParse_Selector(t *testing.T) {
	sel, err := model.Parse(model.Exponential())
	require.NoError(t, err)
	assert.Equal(t, "exp", sel.String())
}
