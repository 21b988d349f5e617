package table

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvfit/model"
	"gonum.org/v1/gonum/floats"
)

// Typeset replacements for a +Inf field.
const (
	InfMarkup = `$\infty$`
	InfPlain  = "∞"
)

// r2Decimals is fixed regardless of Input.Decimals.
const r2Decimals = 4

// Align is the horizontal alignment of the table relative to its anchor.
type Align int

const (
	// AlignLeft puts the anchor on the table's left edge.
	AlignLeft Align = iota
	// AlignRight puts the anchor on the table's right edge.
	AlignRight
)

// String returns "left" or "right".
func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}

	return "left"
}

// Anchor is a point in data coordinates; the table hangs below it.
type Anchor struct {
	X, Y float64
}

// Row is one plain-text table row.
type Row struct {
	Label, Value, Error string
}

// Table is the formatted payload handed to a renderer.
type Table struct {
	Title  string // plain model equation; empty for Custom
	Header Header
	Rows   []Row // parameter rows then the R² row
	Markup string
	Anchor Anchor
	Align  Align
}

// Input carries everything Format needs.
//
// Fields:
//   - Kind          — resolved model kind; selects the row layout.
//   - Params/StdErr — positional fit output; missing entries print as NaN.
//   - R2            — coefficient of determination, always %.4f.
//   - Decimals      — digits after the point for Params/StdErr (negative → 0).
//   - Scientific    — %e instead of %f.
//   - Header        — column labels; zero value means DefaultHeader.
//   - DecimalMarker — replaces "." in plain rows; empty keeps ".".
//   - X, Y          — samples, for the anchor bounding box.
type Input struct {
	Kind          model.Kind
	Params        []float64
	StdErr        []float64
	R2            float64
	Decimals      int
	Scientific    bool
	Header        Header
	DecimalMarker string
	X, Y          []float64
}

// layout describes the rows emitted for one model kind.
type layout struct {
	titleMarkup string
	titlePlain  string
	names       []string // parameter symbols, in Params order
}

var layouts = map[model.Kind]layout{
	model.KindLinear: {
		titleMarkup: `\multicolumn{3}{l}{$ y = ax + b $}`,
		titlePlain:  "y = ax + b",
		names:       []string{"a", "b"},
	},
	model.KindExponential: {
		titleMarkup: `\multicolumn{3}{l}{$ y = a \cdot e^{-bx} + c $}`,
		titlePlain:  "y = a·e^(-bx) + c",
		names:       []string{"a", "b", "c"},
	},
	model.KindCustom: {},
}

// Format builds the parameter table for in.Kind.
// MAIN DESCRIPTION:
//   - Every value and uncertainty is formatted on its own with %.{d}f or
//     %.{d}e; R² always with %.4f. A +Inf field becomes InfMarkup (InfPlain
//     in Rows). NaN and -Inf pass through unchanged.
//
// Behavior highlights:
//   - NoFit (and any unknown kind) returns nil: no table is drawn.
//   - Linear with a > 0 anchors top-left at (min x, max y), left aligned;
//     a <= 0 or NaN anchors top-right at (max x, max y), right aligned.
//   - Every other kind anchors top-left.
//
// Complexity:
//   - O(p + n) for p parameters and n samples.
func Format(in Input) *Table {
	lay, ok := layouts[in.Kind]
	if !ok {
		return nil
	}

	header := ParseHeader(in.Header)
	decimals := in.Decimals
	if decimals < 0 {
		decimals = 0
	}
	verb := 'f'
	if in.Scientific {
		verb = 'e'
	}

	t := &Table{Title: lay.titlePlain, Header: header}

	var mk strings.Builder
	mk.WriteString(`\begin{tabular}{ccc} `)
	if lay.titleMarkup != "" {
		mk.WriteString(lay.titleMarkup + ` \\ && \\ `)
	}
	mk.WriteString(`\hline ` + header.Markup() + ` \\ \hline `)

	for i, name := range lay.names {
		v := formatNumber(at(in.Params, i), verb, decimals)
		e := formatNumber(at(in.StdErr, i), verb, decimals)
		fmt.Fprintf(&mk, `$ %s $ & %s & %s \\ `, name, markupField(v), markupField(e))
		t.Rows = append(t.Rows, Row{
			Label: name,
			Value: plainField(v, in.DecimalMarker),
			Error: plainField(e, in.DecimalMarker),
		})
	}

	r2 := formatNumber(in.R2, 'f', r2Decimals)
	fmt.Fprintf(&mk, `$R^2$ & %s & \\ \hline \end{tabular}`, markupField(r2))
	t.Rows = append(t.Rows, Row{Label: "R²", Value: plainField(r2, in.DecimalMarker)})
	t.Markup = mk.String()

	t.Anchor, t.Align = place(in.Kind, at(in.Params, 0), in.X, in.Y)

	return t
}

// Text lays the plain rows out as aligned lines for text-drawing backends.
func (t *Table) Text() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(t.Title + "\n\n")
	}
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Header[0], t.Header[1], t.Header[2])
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Label, r.Value, r.Error)
	}
	_ = tw.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

// place picks the anchor corner of the data bounding box.
func place(kind model.Kind, lead float64, x, y []float64) (Anchor, Align) {
	if len(x) == 0 || len(y) == 0 {
		return Anchor{}, AlignLeft
	}
	top := floats.Max(y)
	if kind == model.KindLinear && !(lead > 0) {
		return Anchor{X: floats.Max(x), Y: top}, AlignRight
	}

	return Anchor{X: floats.Min(x), Y: top}, AlignLeft
}

// formatNumber renders v with the given verb; +Inf stays recognisable as "+Inf".
func formatNumber(v float64, verb rune, decimals int) string {
	return fmt.Sprintf("%.*"+string(verb), decimals, v)
}

func markupField(s string) string {
	if s == "+Inf" {
		return InfMarkup
	}

	return `\num{` + s + `}`
}

func plainField(s, marker string) string {
	if s == "+Inf" {
		return InfPlain
	}
	if marker == "" || marker == "." {
		return s
	}

	return strings.Replace(s, ".", marker, 1)
}

func at(v []float64, i int) float64 {
	if i < len(v) {
		return v[i]
	}

	return math.NaN()
}
