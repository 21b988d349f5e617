// Package fit runs nonlinear least squares of a resolved model against
// (x, y) samples and derives parameter uncertainties from the covariance.
//
// ✨ Key features:
//   - Levenberg–Marquardt with a trust region on scaled normal equations (default)
//   - gonum/optimize minimizers (LBFGS, Nelder–Mead) as alternatives
//   - analytic Jacobian for built-in shapes, central differences (gonum/diff/fd) otherwise
//   - covariance inv(JᵀJ)·SSR/(n−p); standard errors sqrt(diag)
//
// ⚙️ Usage:
//
//	m, _ := model.Resolve(model.Linear())
//	res, err := fit.Fit(m, x, y)
//	if errors.Is(err, fit.ErrFitConvergence) {
//	  // no retry: surface to the caller
//	}
//	fmt.Println(res.Params, res.StdErr)
//
// The search always starts from all-ones parameters and is unconstrained.
// With exactly as many samples as parameters the covariance cannot be
// estimated and is reported as +Inf everywhere.
package fit
