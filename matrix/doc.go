// Package matrix provides the small dense linear-algebra kernel used by the
// least-squares fit engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors.
//   - Gram (AᵀA) and TMatVec (Aᵀx) for building normal equations.
//   - AddDiag and Scale for damping and covariance scaling.
//   - LU, Solve and Inverse (Doolittle, no pivoting) for damped
//     normal-equation solves and for the parameter covariance inv(JᵀJ).
//   - FromMat, an adapter from gonum's mat.Matrix (Jacobians are built
//     there), and ToRows for plain-slice export.
//
// Matrices here are tiny (parameters × parameters, samples × parameters), so
// every kernel favors determinism and clear errors over blocking or SIMD.
//
// See the examples in this package for usage patterns.
package matrix
