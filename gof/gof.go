// Package gof evaluates goodness of fit for a resolved model.
//
// R2 returns the coefficient of determination 1 − SS_res/SS_tot. It may be
// negative (worse than the mean baseline) and is non-finite when every y is
// identical; neither case is an error.
package gof

import (
	"github.com/katalvlaran/lvfit/model"
	"gonum.org/v1/gonum/stat"
)

// R2 computes 1 − Σ(y_i − f(x_i; p))² / Σ(y_i − ȳ)².
//
// Behavior highlights:
//   - A perfect fit returns exactly 1.0.
//   - SS_tot == 0 is not guarded: the result is NaN (0/0) or −Inf.
//   - x and y are assumed equal length; the shorter one bounds the sum.
//
// Complexity:
//   - Time O(n), Space O(1).
func R2(x, y []float64, f model.Func, params []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	mean := stat.Mean(y[:n], nil)

	var ssRes, ssTot, d float64
	for i := 0; i < n; i++ {
		d = y[i] - f(x[i], params)
		ssRes += d * d
		d = y[i] - mean
		ssTot += d * d
	}

	return 1 - ssRes/ssTot
}
