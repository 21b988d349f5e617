// Package render composes one figure (data markers, fitted curve, axis
// labels and the parameter table) and exports it to a file.
//
// Every call owns its Config and its Backend; nothing process-wide is
// mutated, so concurrent Render calls do not interfere.
//
// Engines:
//
//   - EnginePlot draws with gonum/plot. The output format follows the file
//     extension (.pdf, .png, .svg, .eps, …). The table is drawn as plain
//     monospaced text.
//   - EngineLaTeX writes a standalone pgfplots document (siunitx plus the
//     caller preamble) and compiles it with an external pdflatex. The table
//     is typeset from its markup. PDF output only.
//
// Custom backends plug in through RenderWith.
//
// Every failure is an *Error matching errors.Is(err, ErrRender).
package render
