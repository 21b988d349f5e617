// Package lvfit fits a parametric model to (x, y) measurements and renders a
// publication-style figure: data markers, the fitted curve and a typeset
// table of parameters, standard errors and R².
//
// 🚀 What is lvfit?
//
//	One call, one figure:
//		• Model Resolver: linear, single-exponential, no-fit or your own func
//		• Fit Engine: Levenberg–Marquardt (or gonum LBFGS / Nelder–Mead)
//		• Goodness of fit: coefficient of determination R²
//		• Table Formatter: siunitx markup, sign-aware placement
//		• Renderer: gonum/plot or pgfplots via pdflatex
//		• Output Resolver: permissive path fallback to graph.pdf
//
// ✨ Why lvfit?
//
//   - No global plotting state: every call owns its configuration.
//   - Typed errors: model.ErrInvalidModel, fit.ErrFitConvergence,
//     render.ErrRender, all matched with errors.Is.
//   - Small, tested kernels: matrix (LU, inverse, Gram) under the fit.
//
// Under the hood:
//
//	model/   — selectors, built-in shapes, Parse for dynamic values
//	matrix/  — dense kernels for normal equations and covariance
//	fit/     — least-squares engine, covariance, standard errors
//	gof/     — R²
//	table/   — header parsing, number formatting, anchor placement
//	render/  — backends and export
//	output/  — path resolution and open-after-write
//	cmd/lvfit — CSV-in, figure-out command line tool
//
// ⚙️ Usage:
//
//	rep, err := lvfit.FitAndPlot(x, y,
//		lvfit.WithModel(model.Linear()),
//		lvfit.WithLabels(`$ t / \si{\second} $`, "$ v $"),
//		lvfit.WithDecimalPlaces(3),
//		lvfit.WithOutputPath("out/"),
//	)
//
//	go get github.com/katalvlaran/lvfit
package lvfit
