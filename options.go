package lvfit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvfit/fit"
	"github.com/katalvlaran/lvfit/model"
	"github.com/katalvlaran/lvfit/output"
	"github.com/katalvlaran/lvfit/render"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDecimalPlaces is the precision of parameter values and errors.
	DefaultDecimalPlaces = 5

	// DefaultFileFormat names the default output file graph.<format>.
	DefaultFileFormat = "pdf"

	// DefaultEngine renders with gonum/plot.
	DefaultEngine = render.EnginePlot
)

const panicDecimalPlacesInvalid = "lvfit: WithDecimalPlaces: n must be >= 0"

// Option configures one FitAndPlot call.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	selector      model.Selector
	modelValue    any
	hasModelValue bool

	xLabel, yLabel string
	preamble       string
	decimals       int
	scientific     bool
	header         any
	decimalMarker  string

	outputPath string
	fileFormat string
	open       bool
	opener     func(string) error

	engine       render.Engine
	latexCommand string
	fitOpts      []fit.Option

	logger *slog.Logger
}

// WithModel selects the model shape (default model.Linear()).
func WithModel(s model.Selector) Option {
	return func(o *Options) {
		o.selector = s
		o.modelValue, o.hasModelValue = nil, false
	}
}

// WithModelValue selects the model from a dynamic value: "linear", "exp",
// "none" or a Go func(x, p1, ..., pn float64) float64. Invalid values make
// FitAndPlot fail with model.ErrInvalidModel.
func WithModelValue(v any) Option {
	return func(o *Options) { o.modelValue, o.hasModelValue = v, true }
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return func(o *Options) { o.xLabel, o.yLabel = x, y }
}

// WithPreamble appends LaTeX preamble lines after \usepackage{siunitx}.
func WithPreamble(p string) Option {
	return func(o *Options) { o.preamble = p }
}

// WithDecimalPlaces sets the number of decimals (n >= 0).
func WithDecimalPlaces(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("%s, got %d", panicDecimalPlacesInvalid, n))
	}

	return func(o *Options) { o.decimals = n }
}

// WithScientificNotation formats parameters with %e instead of %f.
func WithScientificNotation(on bool) Option {
	return func(o *Options) { o.scientific = on }
}

// WithOutputPath sets the target file or directory; see output.Resolve.
func WithOutputPath(p string) Option {
	return func(o *Options) { o.outputPath = p }
}

// WithFileFormat sets the extension of the fallback file name (default "pdf").
func WithFileFormat(f string) Option {
	return func(o *Options) { o.fileFormat = f }
}

// WithOpenAfterWrite opens the written file in the default viewer.
// Opener failures are logged, never returned.
func WithOpenAfterWrite(on bool) Option {
	return func(o *Options) { o.open = on }
}

// WithOpener replaces output.Open (nil restores it).
func WithOpener(fn func(string) error) Option {
	return func(o *Options) { o.opener = fn }
}

// WithTableHeader sets the table header; see table.ParseHeader.
func WithTableHeader(h any) Option {
	return func(o *Options) { o.header = h }
}

// WithDecimalMarker sets the decimal marker shown in the table ("." default).
func WithDecimalMarker(m string) Option {
	return func(o *Options) { o.decimalMarker = m }
}

// WithEngine selects the rendering engine.
func WithEngine(e render.Engine) Option {
	return func(o *Options) { o.engine = e }
}

// WithLaTeXCommand overrides the compiler used by render.EngineLaTeX.
func WithLaTeXCommand(cmd string) Option {
	return func(o *Options) { o.latexCommand = cmd }
}

// WithFitMethod selects the minimizer. Panics on an unknown method.
func WithFitMethod(m fit.Method) Option {
	set := fit.WithMethod(m)

	return func(o *Options) { o.fitOpts = append(o.fitOpts, set) }
}

// WithFitOptions forwards options to fit.Fit.
func WithFitOptions(opts ...fit.Option) Option {
	return func(o *Options) { o.fitOpts = append(o.fitOpts, opts...) }
}

// WithLogger sets the structured logger (nil discards).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		selector:   model.Linear(),
		decimals:   DefaultDecimalPlaces,
		fileFormat: DefaultFileFormat,
		engine:     DefaultEngine,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.opener == nil {
		o.opener = output.Open
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
