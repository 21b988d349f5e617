// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvfit/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// product computes a·b (aᵀ·b when transA) as rows through At only.
func product(t *testing.T, a, b matrix.Matrix, transA bool) [][]float64 {
	t.Helper()
	rows, inner := a.Rows(), a.Cols()
	if transA {
		rows, inner = inner, rows
	}
	require.Equal(t, inner, b.Rows(), "inner dimensions")
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, b.Cols())
		for j := range out[i] {
			for k := 0; k < inner; k++ {
				if transA {
					out[i][j] += MustAt(t, a, k, i) * MustAt(t, b, k, j)
				} else {
					out[i][j] += MustAt(t, a, i, k) * MustAt(t, b, k, j)
				}
			}
		}
	}

	return out
}

// RequireIdentity asserts rows ≈ I within tol.
func RequireIdentity(t *testing.T, rows [][]float64, tol float64) {
	t.Helper()
	for i := range rows {
		require.Len(t, rows[i], len(rows), "identity must be square")
		for j := range rows[i] {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, rows[i][j], tol, "entry [%d,%d]", i, j)
		}
	}
}
