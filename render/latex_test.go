package render

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvfit/model"
	"github.com/katalvlaran/lvfit/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLaTeXSource checks the generated pgfplots document.
func TestLaTeXSource(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{3, 2, 1}
	tab := table.Format(table.Input{Kind: model.KindLinear, Params: []float64{-1, 4}, StdErr: []float64{0, 0}, R2: 1, X: x, Y: y})
	require.NotNil(t, tab)

	b := newLaTeXBackend(Config{
		Preamble:      `\usepackage{amsmath}`,
		DecimalMarker: ",",
	}.withDefaults())
	b.SetLabels(`$ t / \si{\second} $`, "y")
	require.NoError(t, b.Curve([]float64{1, 3}, []float64{3, 1}))
	require.NoError(t, b.Markers(x, y))
	require.NoError(t, b.Annotate(tab))

	src, err := b.source()
	require.NoError(t, err)
	doc := string(src)

	assert.True(t, strings.HasPrefix(doc, `\documentclass[border=4pt]{standalone}`))
	assert.Contains(t, doc, "\\usepackage{siunitx}\n\\usepackage{amsmath}\n")
	assert.Contains(t, doc, `\renewcommand{\familydefault}{\sfdefault}`)
	assert.Contains(t, doc, `\sisetup{output-decimal-marker={,}}`)
	assert.Contains(t, doc, `xlabel={$ t / \si{\second} $}`)
	assert.Contains(t, doc, `width=460.80pt, height=345.60pt`)
	assert.Contains(t, doc, `no markers] coordinates {(1,3) (3,1)};`)
	assert.Contains(t, doc, `only marks, mark=*, color={rgb,255:red,0;green,0;blue,128}] coordinates {(1,3) (2,2) (3,1)};`)
	assert.Contains(t, doc, `\node[anchor=north east, inner sep=2pt] at (axis cs:3,3) {`+tab.Markup+`};`)
	assert.True(t, strings.HasSuffix(doc, "\\end{document}\n"))
}

// TestLaTeXSource_MarkersOnly omits the curve and the table.
func TestLaTeXSource_MarkersOnly(t *testing.T) {
	b := newLaTeXBackend(Config{MathText: true}.withDefaults())
	require.NoError(t, b.Markers([]float64{0.5}, []float64{1e-9}))

	src, err := b.source()
	require.NoError(t, err)
	doc := string(src)

	assert.NotContains(t, doc, "no markers")
	assert.NotContains(t, doc, `\node`)
	assert.NotContains(t, doc, `\familydefault`)
	assert.Contains(t, doc, "\\usepackage{siunitx}\n\\sisetup{output-decimal-marker={.}}")
	assert.Contains(t, doc, "{(0.5,1e-09)}")
}

func TestTail(t *testing.T) {
	assert.Equal(t, "c\nd", tail([]byte("a\nb\nc\nd\n"), 2))
	assert.Equal(t, "a", tail([]byte("a"), 5))
}
