// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFromMat_CopiesShapeAndValues lifts a gonum matrix and checks independence.
func TestFromMat_CopiesShapeAndValues(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	d, err := matrix.FromMat(src)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	assert.Equal(t, 6.0, MustAt(t, d, 1, 2))

	src.Set(0, 0, 99)
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0), "FromMat must copy")
}

// TestFromMat_Policy rejects NaN by default and accepts it when disabled.
func TestFromMat_Policy(t *testing.T) {
	src := mat.NewDense(1, 2, []float64{1, math.NaN()})

	_, err := matrix.FromMat(src)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	d, err := matrix.FromMat(src, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, d, 0, 1)))

	_, err = matrix.FromMat(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
