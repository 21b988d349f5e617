package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/katalvlaran/lvfit"
	"github.com/katalvlaran/lvfit/output"
	"github.com/katalvlaran/lvfit/render"
	"github.com/spf13/viper"
)

// settings holds every CLI knob after flags and config are merged.
type settings struct {
	Data   string
	Config string

	Model         string
	XLabel        string
	YLabel        string
	Preamble      string
	Decimals      int
	Scientific    bool
	Header        string
	DecimalMarker string

	Output string
	Format string
	Open   bool

	Engine string
	LaTeX  string
	Method string

	XCol       int
	YCol       int
	SkipHeader bool
	Verbose    bool
}

// Config keys; identical to the long flag names.
const (
	keyModel         = "model"
	keyXLabel        = "xlabel"
	keyYLabel        = "ylabel"
	keyPreamble      = "preamble"
	keyDecimals      = "decimals"
	keyScientific    = "scientific"
	keyHeader        = "header"
	keyDecimalMarker = "decimal-marker"
	keyOutput        = "output"
	keyFormat        = "format"
	keyOpen          = "open"
	keyEngine        = "engine"
	keyLaTeX         = "latex-command"
	keyMethod        = "method"
	keyXCol          = "x-col"
	keyYCol          = "y-col"
	keySkipHeader    = "skip-header"
	keyVerbose       = "verbose"
)

// newApp declares the command line. set records which flags the user gave.
func newApp() (*settings, map[string]*bool, *kingpin.Application) {
	s := &settings{}
	set := map[string]*bool{}
	app := kingpin.New("lvfit", "Fit a model to (x, y) samples and plot it with a parameter table.")
	app.Version(version)

	flag := func(name, help string) *kingpin.FlagClause {
		b := new(bool)
		set[name] = b

		return app.Flag(name, help).IsSetByUser(b)
	}

	app.Arg("data", "CSV file with x and y columns ('-' reads stdin).").Required().StringVar(&s.Data)
	app.Flag("config", "Config file (yaml, toml, json, ...) supplying flag defaults.").Short('c').StringVar(&s.Config)

	flag(keyModel, "Model: linear, exp or none.").Short('m').Default("linear").StringVar(&s.Model)
	flag(keyXLabel, "X axis label (LaTeX allowed).").StringVar(&s.XLabel)
	flag(keyYLabel, "Y axis label (LaTeX allowed).").StringVar(&s.YLabel)
	flag(keyPreamble, "Extra LaTeX preamble.").StringVar(&s.Preamble)
	flag(keyDecimals, "Decimal places for parameters.").Short('d').
		Default(fmt.Sprint(lvfit.DefaultDecimalPlaces)).IntVar(&s.Decimals)
	flag(keyScientific, "Scientific notation for parameters.").BoolVar(&s.Scientific)
	flag(keyHeader, "Table header, e.g. 'Param & Value & Error'.").StringVar(&s.Header)
	flag(keyDecimalMarker, "Decimal marker in the table.").Default(render.DefaultDecimalMark).StringVar(&s.DecimalMarker)
	flag(keyOutput, "Output file or directory.").Short('o').StringVar(&s.Output)
	flag(keyFormat, "Format of the fallback file name "+output.DefaultFile+".").
		Default(lvfit.DefaultFileFormat).StringVar(&s.Format)
	flag(keyOpen, "Open the figure after writing it.").BoolVar(&s.Open)
	flag(keyEngine, "Renderer: plot or latex.").Default(render.EnginePlot.String()).StringVar(&s.Engine)
	flag(keyLaTeX, "LaTeX compiler for --engine=latex.").Default(render.DefaultLaTeXCommand).StringVar(&s.LaTeX)
	flag(keyMethod, "Minimizer: lm, lbfgs or nelder-mead.").Default("lm").StringVar(&s.Method)
	flag(keyXCol, "Zero-based CSV column of x.").Default("0").IntVar(&s.XCol)
	flag(keyYCol, "Zero-based CSV column of y.").Default("1").IntVar(&s.YCol)
	flag(keySkipHeader, "Skip the first CSV record.").BoolVar(&s.SkipHeader)
	flag(keyVerbose, "Debug logging.").Short('v').BoolVar(&s.Verbose)

	return s, set, app
}

// loadConfig reads path and fills every setting the user did not pass as a flag.
func loadConfig(path string, s *settings, set map[string]*bool) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	from := func(key string) bool { return !*set[key] && v.IsSet(key) }
	str := func(key string, dst *string) {
		if from(key) {
			*dst = v.GetString(key)
		}
	}
	num := func(key string, dst *int) {
		if from(key) {
			*dst = v.GetInt(key)
		}
	}
	flag := func(key string, dst *bool) {
		if from(key) {
			*dst = v.GetBool(key)
		}
	}

	str(keyModel, &s.Model)
	str(keyXLabel, &s.XLabel)
	str(keyYLabel, &s.YLabel)
	str(keyPreamble, &s.Preamble)
	num(keyDecimals, &s.Decimals)
	flag(keyScientific, &s.Scientific)
	str(keyHeader, &s.Header)
	str(keyDecimalMarker, &s.DecimalMarker)
	str(keyOutput, &s.Output)
	str(keyFormat, &s.Format)
	flag(keyOpen, &s.Open)
	str(keyEngine, &s.Engine)
	str(keyLaTeX, &s.LaTeX)
	str(keyMethod, &s.Method)
	num(keyXCol, &s.XCol)
	num(keyYCol, &s.YCol)
	flag(keySkipHeader, &s.SkipHeader)
	flag(keyVerbose, &s.Verbose)

	return nil
}
