// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels used around the normal equations:
//     Scale (covariance = inv(JᵀJ)·s²) and AddDiag (Levenberg–Marquardt damping).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for Dense, i→j otherwise).
//   - One output allocation; inputs are never mutated.

package matrix

const (
	opScale   = "Scale"
	opAddDiag = "AddDiag"
)

// Scale returns alpha·m as a new Dense.
// Stage 1 (Validate): nil-check.
// Stage 2 (Execute): flat loop for *Dense, At/Set otherwise.
// Errors: ErrNilMatrix, ErrNaNInf when a product leaves the finite range.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			if res.data[idx] = v * alpha; res.rejects(res.data[idx]) {
				return nil, matrixErrorf(opScale, ErrNaNInf)
			}
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// AddDiag returns m + diag(d) as a new Dense; m must be square with len(d) == n.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²) for the copy, O(n) for the shift.
func AddDiag(m Matrix, d []float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAddDiag, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(d, n); err != nil {
		return nil, matrixErrorf(opAddDiag, err)
	}

	res, err := Scale(m, 1)
	if err != nil {
		return nil, matrixErrorf(opAddDiag, err)
	}
	for i, s := range d {
		if err = res.Set(i, i, res.data[i*n+i]+s); err != nil {
			return nil, matrixErrorf(opAddDiag, err)
		}
	}

	return res, nil
}
