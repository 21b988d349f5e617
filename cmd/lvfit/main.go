// Command lvfit reads (x, y) samples from CSV, fits a model and writes a
// figure with the fitted curve and a parameter table.
//
// Usage:
//
//	lvfit [flags] <data.csv | ->
//
// Every flag may also come from a config file (--config, any format viper
// reads); flags given on the command line win.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvfit"
	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/render"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvfit:", err)
		os.Exit(1)
	}
}

// run is main without process globals.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	s, set, app := newApp()
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	if _, err := app.Parse(args); err != nil {
		return err
	}
	if s.Config != "" {
		if err := loadConfig(s.Config, s, set); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	engine, err := render.ParseEngine(s.Engine)
	if err != nil {
		return err
	}
	method, err := fit.ParseMethod(s.Method)
	if err != nil {
		return err
	}
	if s.Decimals < 0 {
		return fmt.Errorf("decimals must be >= 0, got %d", s.Decimals)
	}

	x, y, err := readInput(s.Data, stdin, s.XCol, s.YCol, s.SkipHeader)
	if err != nil {
		return err
	}
	logger.Debug("samples loaded", "source", s.Data, "n", len(x))

	opts := []lvfit.Option{
		lvfit.WithModelValue(s.Model),
		lvfit.WithLabels(s.XLabel, s.YLabel),
		lvfit.WithPreamble(s.Preamble),
		lvfit.WithDecimalPlaces(s.Decimals),
		lvfit.WithScientificNotation(s.Scientific),
		lvfit.WithOutputPath(s.Output),
		lvfit.WithFileFormat(s.Format),
		lvfit.WithOpenAfterWrite(s.Open),
		lvfit.WithDecimalMarker(s.DecimalMarker),
		lvfit.WithEngine(engine),
		lvfit.WithLaTeXCommand(s.LaTeX),
		lvfit.WithFitMethod(method),
		lvfit.WithLogger(logger),
	}
	if s.Header != "" {
		opts = append(opts, lvfit.WithTableHeader(s.Header))
	}

	rep, err := lvfit.FitAndPlot(x, y, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, rep)

	return nil
}
