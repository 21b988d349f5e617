package fit

import (
	"math"

	"github.com/katalvlaran/lvfit/matrix"
)

// covariance derives the parameter covariance at params.
// MAIN DESCRIPTION:
//   - cov = inv(JᵀJ) · SSR/(n−p), the residual-variance scaled estimate.
//
// Behavior highlights:
//   - n == p leaves no degrees of freedom: every entry is +Inf
//     (reported downstream as an infinite uncertainty, not an error).
//   - A singular JᵀJ (a parameter the model ignores, collinear columns)
//     is a fit failure.
//
// Errors:
//   - ErrFitConvergence wrapping matrix.ErrSingular or evaluation errors.
func covariance(pr *problem, params []float64, ssr float64) (*matrix.Dense, error) {
	jac, err := pr.jacobian(params)
	if err != nil {
		return nil, fitErrorf("jacobian at optimum", err)
	}
	jtj, err := matrix.Gram(jac)
	if err != nil {
		return nil, fitErrorf("normal equations at optimum", err)
	}
	inv, err := matrix.Inverse(jtj)
	if err != nil {
		return nil, fitErrorf("singular jacobian", err)
	}

	dof := pr.n - pr.p
	if dof <= 0 {
		cov, err := matrix.NewDense(pr.p, pr.p, matrix.WithAllowPosInf())
		if err != nil {
			return nil, fitErrorf("covariance", err)
		}
		cov.Fill(math.Inf(1))

		return cov, nil
	}

	cov, err := matrix.Scale(inv, ssr/float64(dof))
	if err != nil {
		return nil, fitErrorf("covariance", err)
	}

	return cov, nil
}
