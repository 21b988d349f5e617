package lvfit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/gof"
	"github.com/katalvlaran/lvfit/matrix"
	"github.com/katalvlaran/lvfit/model"
	"github.com/katalvlaran/lvfit/output"
	"github.com/katalvlaran/lvfit/render"
	"github.com/katalvlaran/lvfit/table"
)

// Report is what one FitAndPlot call computed and where it wrote.
//
// Fields:
//   - Path  — resolved output file.
//   - Model — resolved model.
//   - Fit   — fit result; nil for NoFit.
//   - R2    — coefficient of determination; NaN for NoFit.
//   - Table — formatted table; nil for NoFit.
type Report struct {
	Path  string
	Model model.Model
	Fit   *fit.Result
	R2    float64
	Table *table.Table
}

// FitAndPlot fits the selected model to (x, y) and writes the figure.
// MAIN DESCRIPTION:
//   - Resolve model → fit (skipped for NoFit) → R² → table → resolve output
//     path → render → optionally open the file.
//
// Errors (first failure aborts; nothing is retried):
//   - model.ErrInvalidModel  — unrecognised selector value.
//   - fit.ErrFitConvergence  — fit failed or inputs are inconsistent.
//   - render.ErrRender       — drawing or export failed.
//
// Opening the written file is best-effort: its error is logged only.
func FitAndPlot(x, y []float64, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	log := o.logger

	sel := o.selector
	if o.hasModelValue {
		var err error
		if sel, err = model.Parse(o.modelValue); err != nil {
			return nil, err
		}
	}
	m, err := model.Resolve(sel)
	if err != nil {
		return nil, err
	}

	rep := &Report{Model: m, R2: math.NaN()}
	if !m.IsNone() {
		if rep.Fit, err = fit.Fit(m, x, y, o.fitOpts...); err != nil {
			return nil, err
		}
		rep.R2 = gof.R2(x, y, m.Func, rep.Fit.Params)
		rep.Table = table.Format(table.Input{
			Kind:          m.Kind,
			Params:        rep.Fit.Params,
			StdErr:        rep.Fit.StdErr,
			R2:            rep.R2,
			Decimals:      o.decimals,
			Scientific:    o.scientific,
			Header:        table.ParseHeader(o.header),
			DecimalMarker: o.decimalMarker,
			X:             x,
			Y:             y,
		})
		log.Info("fit complete",
			"model", m.Kind.String(),
			"method", rep.Fit.Method.String(),
			"params", rep.Fit.Params,
			"stderr", rep.Fit.StdErr,
			"r2", rep.R2,
			"iterations", rep.Fit.Iterations)
		if rows, err := matrix.ToRows(rep.Fit.Cov); err == nil {
			log.Debug("covariance", "rows", rows)
		}
	} else {
		log.Debug("fit skipped", "model", m.Kind.String())
	}

	rep.Path = output.ResolveAs(o.outputPath, output.DefaultName(o.fileFormat))
	if o.outputPath != "" && rep.Path != o.outputPath {
		log.Info("output path resolved", "requested", o.outputPath, "path", rep.Path)
	}

	cfg := render.Config{
		Engine:        o.engine,
		XLabel:        o.xLabel,
		YLabel:        o.yLabel,
		Preamble:      o.preamble,
		DecimalMarker: o.decimalMarker,
		MathText:      true,
		LaTeXCommand:  o.latexCommand,
	}
	fig := render.Figure{X: x, Y: y, Model: m, Table: rep.Table}
	if rep.Fit != nil {
		fig.Params = rep.Fit.Params
	}
	if err = render.Render(cfg, fig, rep.Path); err != nil {
		return nil, err
	}
	log.Info("figure written", "path", rep.Path, "engine", o.engine.String())

	if o.open {
		if err = o.opener(rep.Path); err != nil {
			log.Warn("open after write failed", "path", rep.Path, "err", err)
		}
	}

	return rep, nil
}

// String summarises the report on one line.
func (r *Report) String() string {
	if r.Fit == nil {
		return fmt.Sprintf("%s: no fit -> %s", r.Model.Kind, r.Path)
	}

	return fmt.Sprintf("%s: params=%v stderr=%v R2=%.4f -> %s",
		r.Model.Kind, r.Fit.Params, r.Fit.StdErr, r.R2, r.Path)
}
