package fit

import (
	"math"

	"github.com/katalvlaran/lvfit/matrix"
)

const (
	// lmTau is the initial damping, relative to the diagonal scale D².
	lmTau = 1e-3
	// lmStepBound sets the initial trust radius to lmStepBound·‖D·p₀‖.
	lmStepBound = 1.0
	// lmGoodRatio widens the trust radius when actual/predicted gain exceeds it.
	lmGoodRatio = 0.75
	// lmMaxLambda aborts a search whose steps keep increasing the objective.
	lmMaxLambda = 1e16
	// lmMinLambda keeps damping strictly positive.
	lmMinLambda = 1e-16
	// lmDiagFloor damps parameters with a zero diagonal in JᵀJ.
	lmDiagFloor = 1e-12
)

// levenbergMarquardt minimizes the residual sum of squares of pr.
// MAIN DESCRIPTION:
//   - Solve (JᵀJ + λ·D²) δ = Jᵀr with D² the running maximum of diag(JᵀJ);
//     accept δ when it lowers SSR.
//   - Steps are bounded to a trust region ‖D·δ‖ ≤ Δ, so a single step cannot
//     jump into a region where the model saturates (e.g. exp(-b·x) underflow).
//
// Implementation:
//   - Stage 1: λ₀ = τ (dimensionless), Δ₀ = ‖D·p₀‖.
//   - Stage 2: grow λ until a step fits the trust region and improves SSR;
//     after acceptance λ follows the gain ratio ρ (Nielsen) and Δ widens when ρ > ¾.
//   - Stage 3: converge when the residual is orthogonal to every Jacobian
//     column within tol (scaled gradient), or when a lightly damped step
//     is shorter than tol relative to the parameters.
//
// Behavior highlights:
//   - A heavily damped step is never taken as evidence of convergence:
//     the search either reaches a stationary point or fails.
//
// Errors:
//   - ErrFitConvergence when the iteration budget is spent, λ overflows or
//     the Jacobian cannot be evaluated.
//
// Complexity:
//   - O(iters · (n·p² + p³)).
func levenbergMarquardt(pr *problem, init []float64, o Options) ([]float64, int, error) {
	params := append([]float64(nil), init...)
	r, cost := pr.residuals(params)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil, 0, fitErrorf("initial residuals are not finite", matrix.ErrNaNInf)
	}

	var (
		scale  []float64
		radius float64
	)
	lambda, nu := lmTau, 2.0
	for iter := 1; iter <= o.maxIterations; iter++ {
		jac, err := pr.jacobian(params)
		if err != nil {
			return nil, iter, fitErrorf("jacobian", err)
		}
		jtj, err := matrix.Gram(jac)
		if err != nil {
			return nil, iter, fitErrorf("normal equations", err)
		}
		grad, err := matrix.TMatVec(jac, r)
		if err != nil {
			return nil, iter, fitErrorf("gradient", err)
		}
		if cost == 0 || maxAbs(grad) == 0 {
			return params, iter, nil
		}

		diag := jtj.Diag()
		if scale == nil {
			scale = make([]float64, len(diag))
		}
		for j, d := range diag {
			scale[j] = math.Max(scale[j], math.Max(d, lmDiagFloor))
		}
		if gradientCosine(grad, diag, cost) <= o.tolerance {
			return params, iter, nil
		}
		if radius == 0 {
			if radius = lmStepBound * scaledNorm(scale, params); radius == 0 {
				radius = lmStepBound
			}
		}

		for {
			step, err := dampedStep(jtj, scale, grad, lambda)
			if err == nil {
				if length := scaledNorm(scale, step); length <= radius {
					small := norm(step) <= o.tolerance*(norm(params)+o.tolerance)
					trial := make([]float64, len(params))
					for i := range params {
						trial[i] = params[i] + step[i]
					}
					rt, ct := pr.residuals(trial)
					if ct < cost {
						rho := 0.0
						if pred := predictedGain(grad, scale, step, lambda); pred > 0 {
							rho = (cost - ct) / pred
						}
						params, r, cost = trial, rt, ct
						if rho > lmGoodRatio {
							radius = math.Max(radius, 2*length)
						}
						lambda = math.Max(lambda*math.Max(1.0/3, 1-math.Pow(2*rho-1, 3)), lmMinLambda)
						nu = 2
						if small && lambda <= lmTau {
							return params, iter, nil
						}

						break
					}
					if small && lambda <= lmTau {
						return params, iter, nil
					}
				}
			}

			lambda *= nu
			nu *= 2
			if lambda > lmMaxLambda {
				return nil, iter, fitErrorf("damping overflow: no step lowers the residuals", nil)
			}
		}
	}

	return nil, o.maxIterations, fitErrorf("iteration limit reached", nil)
}

// dampedStep solves (A + λ·diag(scale)) δ = g.
func dampedStep(a *matrix.Dense, scale, g []float64, lambda float64) ([]float64, error) {
	shift := make([]float64, len(scale))
	for i, d := range scale {
		shift[i] = lambda * d
	}
	damped, err := matrix.AddDiag(a, shift)
	if err != nil {
		return nil, err
	}

	return matrix.Solve(damped, g)
}

// predictedGain is the SSR decrease the linear model promises for step:
// δᵀ(g + λ·D²δ).
func predictedGain(g, scale, step []float64, lambda float64) float64 {
	var s float64
	for j, d := range step {
		s += d * (g[j] + lambda*scale[j]*d)
	}

	return s
}

// gradientCosine is max_j |g_j| / (‖J_j‖·‖r‖): the largest cosine between the
// residual and a Jacobian column. Zero columns are skipped.
func gradientCosine(g, diag []float64, cost float64) float64 {
	var m float64
	for j, d := range diag {
		if d <= 0 {
			continue
		}
		if c := math.Abs(g[j]) / math.Sqrt(d*cost); c > m {
			m = c
		}
	}

	return m
}

// scaledNorm is ‖D·v‖ with D = sqrt(scale).
func scaledNorm(scale, v []float64) float64 {
	var s float64
	for j, x := range v {
		s += scale[j] * x * x
	}

	return math.Sqrt(s)
}

// norm is the Euclidean length of v.
func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}

// maxAbs returns max |v_i| (0 for empty v).
func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}
