package render

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Engine selects the drawing backend.
type Engine int

const (
	// EnginePlot renders with gonum/plot (default).
	EnginePlot Engine = iota

	// EngineLaTeX renders a pgfplots document through pdflatex.
	EngineLaTeX
)

// String returns "plot" or "latex".
func (e Engine) String() string {
	switch e {
	case EnginePlot:
		return "plot"
	case EngineLaTeX:
		return "latex"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// ParseEngine maps "plot"/"gonum" and "latex"/"pdflatex" (any case) to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plot", "gonum":
		return EnginePlot, nil
	case "latex", "pdflatex":
		return EngineLaTeX, nil
	default:
		return 0, &Error{Op: "engine", Err: fmt.Errorf("unknown engine %q", s)}
	}
}

// Defaults for Config fields left at their zero value.
const (
	DefaultWidth        = 6.4 * vg.Inch
	DefaultHeight       = 4.8 * vg.Inch
	DefaultLaTeXCommand = "pdflatex"
	DefaultDecimalMark  = "."

	// CurveSamples is the number of evenly spaced points on the fitted curve.
	CurveSamples = 100
)

// Config is the per-call rendering configuration, passed by value.
//
// Fields:
//   - Engine        — backend; zero value is EnginePlot.
//   - XLabel/YLabel — axis labels (LaTeX allowed with EngineLaTeX).
//   - Preamble      — extra LaTeX preamble, appended after siunitx.
//   - DecimalMarker — siunitx output-decimal-marker; "" means ".".
//   - Width/Height  — figure size; zero means DefaultWidth/DefaultHeight.
//   - MathText      — serif text; $…$ axis labels are typeset as math.
//   - LaTeXCommand  — compiler for EngineLaTeX; "" means DefaultLaTeXCommand.
type Config struct {
	Engine        Engine
	XLabel        string
	YLabel        string
	Preamble      string
	DecimalMarker string
	Width         vg.Length
	Height        vg.Length
	MathText      bool
	LaTeXCommand  string
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.DecimalMarker == "" {
		c.DecimalMarker = DefaultDecimalMark
	}
	if c.LaTeXCommand == "" {
		c.LaTeXCommand = DefaultLaTeXCommand
	}

	return c
}
