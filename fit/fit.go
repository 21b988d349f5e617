package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfit/matrix"
	"github.com/katalvlaran/lvfit/model"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// fitErrorf tags a failure with its stage and makes it match ErrFitConvergence.
// Underlying matrix sentinels stay reachable through errors.Is as well.
func fitErrorf(stage string, err error) error {
	if err == nil {
		return fmt.Errorf("fit: %s: %w", stage, ErrFitConvergence)
	}

	return fmt.Errorf("fit: %s: %w: %w", stage, ErrFitConvergence, err)
}

// problem binds a model to its samples.
type problem struct {
	f    model.Func
	grad model.Grad
	x, y []float64
	n, p int
}

// residuals returns y_i - f(x_i; params) and their sum of squares.
func (pr *problem) residuals(params []float64) ([]float64, float64) {
	r := make([]float64, pr.n)
	var ssr float64
	for i, xi := range pr.x {
		r[i] = pr.y[i] - pr.f(xi, params)
		ssr += r[i] * r[i]
	}

	return r, ssr
}

// ssr is the objective minimized by every method.
func (pr *problem) ssr(params []float64) float64 {
	_, s := pr.residuals(params)

	return s
}

// jacobian returns ∂f(x_i)/∂p_j (n×p): analytic when the model carries a
// Grad, central differences otherwise.
// NaN/Inf entries (model left its domain) fail the matrix numeric policy.
func (pr *problem) jacobian(params []float64) (*matrix.Dense, error) {
	jm := mat.NewDense(pr.n, pr.p, nil)
	if pr.grad != nil {
		row := make([]float64, pr.p)
		for i, xi := range pr.x {
			pr.grad(xi, params, row)
			jm.SetRow(i, row)
		}

		return matrix.FromMat(jm)
	}
	fd.Jacobian(jm, func(dst, q []float64) {
		for i, xi := range pr.x {
			dst[i] = pr.f(xi, q)
		}
	}, params, &fd.JacobianSettings{Formula: fd.Central})

	return matrix.FromMat(jm)
}

// Fit minimizes Σ(y_i − f(x_i; p))² over p, starting from all ones.
// MAIN DESCRIPTION:
//   - Validate the samples against the model, run the selected minimizer,
//     then derive covariance and standard errors at the optimum.
//
// Implementation:
//   - Stage 1: reject NoFit, mismatched lengths, n < p and non-finite samples.
//   - Stage 2: minimize (Levenberg–Marquardt or gonum/optimize).
//   - Stage 3: covariance inv(JᵀJ)·SSR/(n−p), +Inf everywhere when n == p.
//
// Errors:
//   - ErrFitConvergence for every failure; never retried.
//
// Complexity:
//   - Per iteration O(n·p²) for JᵀJ plus O(p³) for the damped solve.
func Fit(m model.Model, x, y []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if m.IsNone() || m.Func == nil {
		return nil, fitErrorf("no model to fit ("+m.Kind.String()+")", nil)
	}
	if m.NumParams < 1 {
		return nil, fitErrorf(fmt.Sprintf("model has %d parameters", m.NumParams), nil)
	}
	if len(x) != len(y) {
		return nil, fitErrorf(fmt.Sprintf("len(x)=%d != len(y)=%d", len(x), len(y)), matrix.ErrDimensionMismatch)
	}
	if len(x) < m.NumParams {
		return nil, fitErrorf(fmt.Sprintf("%d samples < %d parameters", len(x), m.NumParams), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, fitErrorf("x", err)
	}
	if err := matrix.ValidateFinite(y); err != nil {
		return nil, fitErrorf("y", err)
	}

	pr := &problem{f: m.Func, grad: m.Grad, x: x, y: y, n: len(x), p: m.NumParams}
	init := make([]float64, pr.p)
	for i := range init {
		init[i] = 1.0
	}

	var (
		params []float64
		iters  int
		err    error
	)
	switch o.method {
	case LBFGS, NelderMead:
		params, iters, err = minimize(pr, init, o)
	default:
		params, iters, err = levenbergMarquardt(pr, init, o)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Params: params, Iterations: iters, Method: o.method}
	_, res.SSR = pr.residuals(params)
	if res.Cov, err = covariance(pr, params, res.SSR); err != nil {
		return nil, err
	}
	res.StdErr = make([]float64, pr.p)
	for i, v := range res.Cov.Diag() {
		res.StdErr[i] = math.Sqrt(v)
	}

	return res, nil
}
