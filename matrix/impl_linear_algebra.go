// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transposed matrix-vector products, Gram matrices, LU factorization,
// linear solves and inversion. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Cover exactly what damped Gauss–Newton steps and covariance estimation need.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf at the facade.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opGram    = "Gram"
	opTMatVec = "TMatVec"
	opInverse = "Inverse"
	opLU      = "LU"
	opSolve   = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// TMatVec computes y = mᵀ * x without materializing mᵀ.
// Used for the gradient Jᵀr of a least-squares objective.
//
// Contract: len(x) == m.Rows().
// Complexity: Time O(r*c), Space O(c).
func TMatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTMatVec, err)
			}
			y[j] += v * x[i]
		}
	}

	return y, nil
}

// Gram computes G = AᵀA (c×c, symmetric) for an r×c matrix A.
// MAIN DESCRIPTION:
//   - Normal-equation matrix of a Jacobian; symmetric positive semi-definite.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a); allocate Dense(c×c).
//   - Stage 2: accumulate the upper triangle row by row, then mirror it.
//
// Behavior highlights:
//   - Exact symmetry: G[j,i] is a copy of G[i,j], never recomputed.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Gram(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	rows, cols := a.Rows(), a.Cols()
	g, err := NewDense(cols, cols)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	row := make([]float64, cols)
	var i, j, k int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if row[j], err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opGram, err)
			}
		}
		for j = 0; j < cols; j++ {
			if row[j] == 0 {
				continue
			}
			for k = j; k < cols; k++ {
				g.data[j*cols+k] += row[j] * row[k]
			}
		}
	}
	for j = 0; j < cols; j++ {
		for k = 0; k < j; k++ {
			g.data[j*cols+k] = g.data[k*cols+j]
		}
	}

	return g, nil
}

// Inverse computes A^{-1} using Doolittle LU factorization without pivoting (deterministic).
// The input must be non-nil and square. Returns ErrSingular if a zero pivot is detected.
// Produces new Dense matrices; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateSquare(m). Factorize via LU(m) → L (unit lower), U (upper).
//   - Stage 2: For each canonical basis column e_col:
//   - Forward solve L*y = e_col (top-down).
//   - Backward solve U*x = y    (bottom-up; check nonzero pivots).
//   - Write x into column `col` of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - No pivoting. Normal-equation matrices JᵀJ (+ damping) are symmetric
//     positive (semi-)definite, where Doolittle without pivoting is well defined
//     until an exact zero pivot exposes rank deficiency.
//
// AI-Hints:
//   - If you only need A^{-1}*b, use Solve (one triangular pass instead of n).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var x []float64
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1.0
		if x, err = luSolve(l, u, e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Solve returns x with A*x = b via LU (no pivoting).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(b) != n), ErrSingular.
//
// Complexity:
//   - Time O(n^3) for the factorization, O(n^2) for the triangular solves.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	l, u, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := luSolve(l, u, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// luSolve runs forward (L, unit diagonal) then backward (U) substitution.
func luSolve(l, u *Dense, b []float64) ([]float64, error) {
	n := l.r
	y := make([]float64, n)
	x := make([]float64, n)
	var i, k int
	var sum, pivot float64

	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += l.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += u.data[i*n+k] * x[k]
		}
		pivot = u.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, ErrSingular
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a flat buffer; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	l, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Snapshot A once so the generic and Dense paths share one loop body.
	a := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(a, d.data)
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if a[i*n+j], err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opLU, err)
				}
			}
		}
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = a[i*n+j] - sum
		}

		pivot = u.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (a[j*n+i] - sum) / pivot
		}
	}

	return l, u, nil
}
