// SPDX-License-Identifier: MIT

// Package matrix: converters between gonum's mat.Matrix and Dense.
// Finite-difference Jacobians are produced by gonum/diff/fd into a
// *mat.Dense; FromMat lifts them into this package's kernels.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const opFromMat = "FromMat"

// FromMat copies a gonum matrix into a new Dense (row-major, same shape).
// The numeric policy of opts applies to every entry, so a Jacobian
// containing NaN (model evaluated outside its domain) is rejected here.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrInvalidDimensions (empty src), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromMat(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	d, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromMat, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = src.At(i, j)
			if err = d.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromMat, fmt.Errorf("entry %g: %w", v, err))
			}
		}
	}

	return d, nil
}

// ToRows exports m as a slice of row slices (copied).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
