package fit

import (
	"errors"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// optimizeMethod maps a Method onto a gonum/optimize implementation.
func optimizeMethod(m Method) optimize.Method {
	switch m {
	case NelderMead:
		return &optimize.NelderMead{}
	default:
		return &optimize.LBFGS{}
	}
}

// minimize runs a general-purpose gonum minimizer on the sum of squares.
// The gradient is a central finite difference of the objective.
//
// A line search that stops making progress is treated as convergence at the
// best point found.
//
// Errors:
//   - ErrFitConvergence wrapping the optimizer status error.
func minimize(pr *problem, init []float64, o Options) ([]float64, int, error) {
	prob := optimize.Problem{
		Func: pr.ssr,
		Grad: func(grad, p []float64) {
			fd.Gradient(grad, pr.ssr, p, &fd.Settings{Formula: fd.Central})
		},
	}
	settings := &optimize.Settings{
		MajorIterations: o.maxIterations,
		Converger: &optimize.FunctionConverge{
			Relative:   o.tolerance,
			Iterations: 20,
		},
	}

	res, err := optimize.Minimize(prob, init, settings, optimizeMethod(o.method))
	if err != nil && !stalled(err, res) {
		return nil, 0, fitErrorf(o.method.String(), err)
	}
	if res == nil || res.X == nil {
		return nil, 0, fitErrorf(o.method.String()+": no result", nil)
	}

	return res.X, res.MajorIterations, nil
}

// stalled reports a line-search stop with a usable point.
func stalled(err error, res *optimize.Result) bool {
	if res == nil || res.X == nil {
		return false
	}

	return errors.Is(err, optimize.ErrNoProgress) || errors.Is(err, optimize.ErrLinesearcherFailure)
}
