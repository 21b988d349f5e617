// Package table turns fit parameters, their standard errors and R² into a
// typeset parameter table plus a recommended anchor inside the figure.
//
// What it produces:
//
//   - Markup: a LaTeX tabular (siunitx \num{…} fields) for engines that
//     typeset text.
//   - Rows: the same content as plain strings (∞ for +Inf, caller decimal
//     marker) for engines that draw text directly.
//   - Anchor and Align: top-left of the data bounding box for a rising line
//     and for every non-linear model, top-right for a flat or falling line.
//
// Row layouts are keyed by model.Kind: Linear lists a and b, Exponential
// lists a, b and c, Custom lists only R². NoFit produces no table.
//
// Headers are parsed leniently by ParseHeader and never fail.
package table
