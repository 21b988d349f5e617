package lvfit_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvfit"
	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/model"
	"github.com/katalvlaran/lvfit/render"
	"github.com/katalvlaran/lvfit/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyLine is y = 2x + 1 with an alternating ±0.2 offset, x = 1..10.
func noisyLine() ([]float64, []float64) {
	x := make([]float64, 10)
	y := make([]float64, 10)
	for i := range x {
		x[i] = float64(i + 1)
		y[i] = 2*x[i] + 1 + 0.2*float64(1-2*(i%2))
	}

	return x, y
}

// TestFitAndPlot_Linear runs the whole pipeline and writes a PNG.
func TestFitAndPlot_Linear(t *testing.T) {
	x, y := noisyLine()
	dir := t.TempDir()

	rep, err := lvfit.FitAndPlot(x, y,
		lvfit.WithLabels("x", "y"),
		lvfit.WithDecimalPlaces(3),
		lvfit.WithTableHeader("P,V,E"),
		lvfit.WithOutputPath(filepath.Join(dir, "line.png")),
	)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "line.png"), rep.Path)
	assert.FileExists(t, rep.Path)
	require.NotNil(t, rep.Fit)
	assert.InDelta(t, 2.0, rep.Fit.Params[0], 0.2)
	assert.InDelta(t, 1.0, rep.Fit.Params[1], 1.0)
	assert.Greater(t, rep.R2, 0.99)
	require.NotNil(t, rep.Table)
	assert.Contains(t, rep.Table.Markup, `\hline P & V & E \\`)
	assert.Equal(t, table.AlignLeft, rep.Table.Align)
	assert.Contains(t, rep.String(), "linear: params=")
}

// TestFitAndPlot_DirectoryTarget appends graph.<format> to a directory.
func TestFitAndPlot_DirectoryTarget(t *testing.T) {
	x, y := noisyLine()
	dir := t.TempDir()

	rep, err := lvfit.FitAndPlot(x, y, lvfit.WithOutputPath(dir), lvfit.WithFileFormat("svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "graph.svg"), rep.Path)
	assert.FileExists(t, rep.Path)
}

// TestFitAndPlot_CustomIsR2Only fits a Go func and emits an R²-only table.
func TestFitAndPlot_CustomIsR2Only(t *testing.T) {
	x, y := noisyLine()
	path := filepath.Join(t.TempDir(), "custom.png")

	rep, err := lvfit.FitAndPlot(x, y,
		lvfit.WithModelValue(func(x, a, b float64) float64 { return a*x + b }),
		lvfit.WithOutputPath(path),
	)
	require.NoError(t, err)
	assert.Equal(t, model.KindCustom, rep.Model.Kind)
	require.Len(t, rep.Fit.Params, 2)
	require.NotNil(t, rep.Table)
	require.Len(t, rep.Table.Rows, 1)
	assert.Equal(t, "R²", rep.Table.Rows[0].Label)
	assert.NotContains(t, rep.Table.Markup, "$ a $")
}

// TestFitAndPlot_NoFit draws markers only.
func TestFitAndPlot_NoFit(t *testing.T) {
	x, y := noisyLine()
	path := filepath.Join(t.TempDir(), "raw.png")

	rep, err := lvfit.FitAndPlot(x, y, lvfit.WithModelValue("none"), lvfit.WithOutputPath(path))
	require.NoError(t, err)
	assert.Nil(t, rep.Fit)
	assert.Nil(t, rep.Table)
	assert.True(t, math.IsNaN(rep.R2))
	assert.FileExists(t, path)
	assert.Contains(t, rep.String(), "no fit")
}

// TestFitAndPlot_Exponential fits a decay and formats it in scientific notation.
func TestFitAndPlot_Exponential(t *testing.T) {
	x := make([]float64, 15)
	y := make([]float64, 15)
	for i := range x {
		x[i] = float64(i) * 0.5
		y[i] = 4*math.Exp(-0.8*x[i]) + 0.5
	}

	rep, err := lvfit.FitAndPlot(x, y,
		lvfit.WithModel(model.Exponential()),
		lvfit.WithScientificNotation(true),
		lvfit.WithDecimalMarker(","),
		lvfit.WithOutputPath(filepath.Join(t.TempDir(), "exp.png")),
	)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rep.Fit.Params[0], 1e-4)
	assert.InDelta(t, 0.8, rep.Fit.Params[1], 1e-4)
	assert.InDelta(t, 0.5, rep.Fit.Params[2], 1e-4)
	assert.Contains(t, rep.Table.Rows[0].Value, ",")
	assert.Contains(t, rep.Table.Markup, "e+00}")
}

// TestFitAndPlot_Errors surfaces each error class unchanged.
func TestFitAndPlot_Errors(t *testing.T) {
	x, y := noisyLine()
	dir := t.TempDir()

	_, err := lvfit.FitAndPlot(x, y, lvfit.WithModelValue("cubic"))
	assert.ErrorIs(t, err, model.ErrInvalidModel)

	_, err = lvfit.FitAndPlot(x, y, lvfit.WithModelValue(42))
	assert.ErrorIs(t, err, model.ErrInvalidModel)

	_, err = lvfit.FitAndPlot(x, y[:5])
	assert.ErrorIs(t, err, fit.ErrFitConvergence)

	_, err = lvfit.FitAndPlot(x, y,
		lvfit.WithEngine(render.EngineLaTeX),
		lvfit.WithLaTeXCommand("lvfit-no-such-latex"),
		lvfit.WithOutputPath(filepath.Join(dir, "fig.pdf")))
	assert.ErrorIs(t, err, render.ErrRender)

	_, err = lvfit.FitAndPlot(x, y, lvfit.WithOutputPath(filepath.Join(dir, "fig.bogus")))
	assert.ErrorIs(t, err, render.ErrRender)
}

// TestFitAndPlot_OpenAfterWrite calls the opener with the resolved path and
// swallows its error.
func TestFitAndPlot_OpenAfterWrite(t *testing.T) {
	x, y := noisyLine()
	path := filepath.Join(t.TempDir(), "open.png")
	var buf bytes.Buffer
	var opened []string

	rep, err := lvfit.FitAndPlot(x, y,
		lvfit.WithOutputPath(path),
		lvfit.WithOpenAfterWrite(true),
		lvfit.WithOpener(func(p string) error {
			opened = append(opened, p)

			return errors.New("no viewer")
		}),
		lvfit.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{rep.Path}, opened)
	assert.Contains(t, buf.String(), "fit complete")
	assert.Contains(t, buf.String(), "open after write failed")
}

// TestFitAndPlot_DebugLogsCovariance exports the covariance rows at debug level only.
func TestFitAndPlot_DebugLogsCovariance(t *testing.T) {
	x, y := noisyLine()
	dir := t.TempDir()
	var debug, info bytes.Buffer

	_, err := lvfit.FitAndPlot(x, y,
		lvfit.WithOutputPath(filepath.Join(dir, "a.png")),
		lvfit.WithLogger(slog.New(slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	require.NoError(t, err)
	assert.Contains(t, debug.String(), "msg=covariance")
	assert.Contains(t, debug.String(), "rows=")

	_, err = lvfit.FitAndPlot(x, y,
		lvfit.WithOutputPath(filepath.Join(dir, "b.png")),
		lvfit.WithLogger(slog.New(slog.NewTextHandler(&info, nil))),
	)
	require.NoError(t, err)
	assert.NotContains(t, info.String(), "covariance")
}

// TestFitAndPlot_NoOpenByDefault never calls the opener.
func TestFitAndPlot_NoOpenByDefault(t *testing.T) {
	x, y := noisyLine()
	called := false

	_, err := lvfit.FitAndPlot(x, y,
		lvfit.WithOutputPath(filepath.Join(t.TempDir(), "quiet.png")),
		lvfit.WithOpener(func(string) error { called = true; return nil }),
	)
	require.NoError(t, err)
	assert.False(t, called)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { lvfit.WithDecimalPlaces(-1) })
	assert.Panics(t, func() { lvfit.WithFitMethod(fit.Method(99)) })
}
