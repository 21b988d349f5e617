// Package model resolves a model selector into a concrete regression
// function f(x; p...) over a single independent variable.
//
// 🚀 What is a selector?
//
//	A closed tagged value: Linear, Exponential, NoFit or Custom(fn, n).
//	  • Linear       f(x; a, b)    = a·x + b
//	  • Exponential  f(x; a, b, c) = a·e^(−b·x) + c
//	  • NoFit        no curve at all (data markers only)
//	  • Custom       any caller function with n parameters
//
// ⚙️ Usage:
//
//	m, err := model.Resolve(model.Exponential())
//	y := m.Func(2.0, []float64{5, 0.5, 1})
//
//	// dynamic selectors (CLI flags, config files, plain Go funcs):
//	sel, err := model.Parse("exp")
//	sel, err = model.Parse(func(x, a, b float64) float64 { return a*x*x + b })
//
// Anything that is neither a known name, the "none" sentinel nor a function
// of the right shape fails with ErrInvalidModel.
package model
