package render

import (
	"fmt"

	"github.com/katalvlaran/lvfit/model"
	"github.com/katalvlaran/lvfit/table"
	"gonum.org/v1/gonum/floats"
)

// Backend receives drawing commands for one figure.
// A Backend is used for a single figure and is not safe for concurrent use.
type Backend interface {
	// SetLabels sets the axis labels.
	SetLabels(x, y string)
	// Curve draws a polyline through (xs[i], ys[i]).
	Curve(xs, ys []float64) error
	// Markers draws one marker per sample.
	Markers(xs, ys []float64) error
	// Annotate places the table at its anchor.
	Annotate(t *table.Table) error
	// Export writes the figure to path.
	Export(path string) error
}

// Figure is the content of one plot.
//
// Fields:
//   - X, Y   — samples, drawn as markers; equal, non-zero length.
//   - Model  — resolved model; NoFit (or nil Func) draws no curve.
//   - Params — fitted parameters; fewer than Model.NumParams draws no curve.
//   - Table  — parameter table; nil draws none.
type Figure struct {
	X, Y   []float64
	Model  model.Model
	Params []float64
	Table  *table.Table
}

// hasCurve reports whether the figure carries a fitted curve.
func (f Figure) hasCurve() bool {
	return !f.Model.IsNone() && f.Model.Func != nil &&
		f.Model.NumParams > 0 && len(f.Params) >= f.Model.NumParams
}

// CurvePoints samples the fitted model at CurveSamples evenly spaced points
// over [min x, max x]. It returns nils when the figure has no curve.
func (f Figure) CurvePoints() ([]float64, []float64) {
	if !f.hasCurve() || len(f.X) == 0 {
		return nil, nil
	}
	xs := floats.Span(make([]float64, CurveSamples), floats.Min(f.X), floats.Max(f.X))

	return xs, f.Model.Eval(xs, f.Params)
}

// Render draws fig with the engine named in cfg and writes it to path.
func Render(cfg Config, fig Figure, path string) error {
	cfg = cfg.withDefaults()

	var b Backend
	switch cfg.Engine {
	case EnginePlot:
		b = newPlotBackend(cfg)
	case EngineLaTeX:
		b = newLaTeXBackend(cfg)
	default:
		return &Error{Engine: cfg.Engine, Op: "engine", Err: fmt.Errorf("unsupported engine")}
	}

	return renderErrorf(cfg.Engine, "render", RenderWith(b, cfg, fig, path))
}

// RenderWith drives an arbitrary backend.
// MAIN DESCRIPTION:
//   - Labels, then the curve (unless there is none), then the markers, then
//     the table, then Export. The first failure stops the sequence.
//
// Errors:
//   - *Error matching ErrRender, wrapping the backend's error.
func RenderWith(b Backend, cfg Config, fig Figure, path string) error {
	if len(fig.X) == 0 || len(fig.X) != len(fig.Y) {
		return &Error{Engine: cfg.Engine, Op: "validate",
			Err: fmt.Errorf("need equal, non-zero sample lengths (x=%d, y=%d)", len(fig.X), len(fig.Y))}
	}

	b.SetLabels(cfg.XLabel, cfg.YLabel)
	if xs, ys := fig.CurvePoints(); xs != nil {
		if err := b.Curve(xs, ys); err != nil {
			return renderErrorf(cfg.Engine, "curve", err)
		}
	}
	if err := b.Markers(fig.X, fig.Y); err != nil {
		return renderErrorf(cfg.Engine, "markers", err)
	}
	if fig.Table != nil {
		if err := b.Annotate(fig.Table); err != nil {
			return renderErrorf(cfg.Engine, "annotate", err)
		}
	}

	return renderErrorf(cfg.Engine, "export", b.Export(path))
}
