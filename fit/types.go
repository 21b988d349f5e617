package fit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfit/matrix"
)

// ErrFitConvergence indicates the least-squares search failed or its inputs
// are dimensionally inconsistent. It is never retried internally.
var ErrFitConvergence = errors.New("fit: least-squares fit did not converge")

// Method selects the minimizer.
type Method int

const (
	// LevenbergMarquardt damps Gauss–Newton steps (default).
	LevenbergMarquardt Method = iota

	// LBFGS minimizes the sum of squares with gonum's limited-memory BFGS.
	LBFGS

	// NelderMead minimizes the sum of squares with gonum's simplex search.
	NelderMead
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case LevenbergMarquardt:
		return "levenberg-marquardt"
	case LBFGS:
		return "lbfgs"
	case NelderMead:
		return "nelder-mead"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name (any case) to a Method. "lm" is accepted
// as shorthand for levenberg-marquardt.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lm", "levenberg-marquardt":
		return LevenbergMarquardt, nil
	case "lbfgs":
		return LBFGS, nil
	case "nelder-mead", "neldermead":
		return NelderMead, nil
	default:
		return 0, fmt.Errorf("fit: unknown method %q", s)
	}
}

// Result is the outcome of one fit.
//
// Fields:
//   - Params     — best-fit parameters, positional.
//   - StdErr     — sqrt of the covariance diagonal, paired with Params.
//   - Cov        — parameter covariance (p×p); all +Inf when n == p.
//   - SSR        — residual sum of squares at Params.
//   - Iterations — major iterations spent by the minimizer.
//   - Method     — minimizer that produced the result.
type Result struct {
	Params     []float64
	StdErr     []float64
	Cov        *matrix.Dense
	SSR        float64
	Iterations int
	Method     Method
}
