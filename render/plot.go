package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/katalvlaran/lvfit/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Styling shared by both engines.
var (
	markerColor = color.RGBA{B: 128, A: 255} // navy
	curveColor  = color.Black
)

const (
	curveWidth   = 0.7 // points
	markerRadius = 3   // points
	tableSize    = 9   // points
)

// plotBackend draws with gonum/plot.
type plotBackend struct {
	cfg Config
	p   *plot.Plot
}

func newPlotBackend(cfg Config) *plotBackend {
	p := plot.New()
	variant := "Sans"
	if cfg.MathText {
		variant = "Serif"
	}
	p.X.Label.TextStyle.Font.Variant = font.Variant(variant)
	p.Y.Label.TextStyle.Font.Variant = font.Variant(variant)

	return &plotBackend{cfg: cfg, p: p}
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	return pts
}

// SetLabels sets the axis labels. With MathText, a label carrying $…$ math
// is typeset by gonum/plot's LaTeX handler when go-latex supports every macro
// in it; otherwise it is drawn verbatim.
func (b *plotBackend) SetLabels(x, y string) {
	b.p.X.Label.Text = x
	b.p.Y.Label.Text = y
	if b.cfg.MathText {
		useMath(&b.p.X.Label.TextStyle, x)
		useMath(&b.p.Y.Label.TextStyle, y)
	}
}

// useMath switches sty to text.Latex when txt holds math it can typeset.
func useMath(sty *text.Style, txt string) {
	if !strings.Contains(txt, "$") {
		return
	}
	h := text.Latex{Fonts: font.DefaultCache}
	if typesets(h, txt, sty.Font) {
		sty.Handler = h
	}
}

// typesets reports whether h can lay out every line of txt.
// text.Latex panics on macros go-latex does not know (e.g. siunitx's \si).
func typesets(h text.Handler, txt string, fnt font.Font) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	for _, line := range h.Lines(txt) {
		h.Box(line, fnt)
	}

	return true
}

func (b *plotBackend) Curve(xs, ys []float64) error {
	l, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(curveWidth)
	l.LineStyle.Color = curveColor
	b.p.Add(l)

	return nil
}

func (b *plotBackend) Markers(xs, ys []float64) error {
	s, err := plotter.NewScatter(xys(xs, ys))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = markerColor
	s.GlyphStyle.Radius = vg.Points(markerRadius)
	s.Shape = draw.CircleGlyph{}
	b.p.Add(s)

	return nil
}

// Annotate draws the plain rows in a monospaced font hanging from the anchor.
func (b *plotBackend) Annotate(t *table.Table) error {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: t.Anchor.X, Y: t.Anchor.Y}},
		Labels: []string{t.Text()},
	})
	if err != nil {
		return err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].Font.Variant = "Mono"
		lbl.TextStyle[i].Font.Size = vg.Points(tableSize)
		lbl.TextStyle[i].YAlign = text.YTop
		lbl.TextStyle[i].XAlign = text.XLeft
		if t.Align == table.AlignRight {
			lbl.TextStyle[i].XAlign = text.XRight
		}
	}
	b.p.Add(lbl)

	return nil
}

// Export picks the format from the file extension.
func (b *plotBackend) Export(path string) error {
	if err := b.p.Save(b.cfg.Width, b.cfg.Height, path); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}

	return nil
}
