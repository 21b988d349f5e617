package render

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/katalvlaran/lvfit/table"
	"gonum.org/v1/plot/vg"
)

// texName is the document name inside the scratch directory.
const texName = "figure"

// pgfTemplate uses << >> delimiters so LaTeX braces stay literal.
var pgfTemplate = template.Must(template.New("pgfplots").Delims("<<", ">>").Funcs(template.FuncMap{
	"coords": coords,
	"pt":     func(v vg.Length) string { return strconv.FormatFloat(v.Points(), 'f', 2, 64) + "pt" },
	"num":    func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
}).Parse(`\documentclass[border=4pt]{standalone}
\usepackage{pgfplots}
\pgfplotsset{compat=1.16}
\usepackage{siunitx}
<<- if .Preamble >>
<< .Preamble >>
<<- end >>
<<- if not .MathText >>
\renewcommand{\familydefault}{\sfdefault}
<<- end >>
\sisetup{output-decimal-marker={<< .DecimalMarker >>}}
\begin{document}
\begin{tikzpicture}
\begin{axis}[width=<< pt .Width >>, height=<< pt .Height >>, xlabel={<< .XLabel >>}, ylabel={<< .YLabel >>}, clip=false]
<<- if .CurveX >>
\addplot[color=black, line width=0.7pt, no markers] coordinates {<< coords .CurveX .CurveY >>};
<<- end >>
\addplot[only marks, mark=*, color={rgb,255:red,0;green,0;blue,128}] coordinates {<< coords .X .Y >>};
<<- if .Table >>
\node[anchor=<< .Anchor >>, inner sep=2pt] at (axis cs:<< num .Table.Anchor.X >>,<< num .Table.Anchor.Y >>) {<< .Table.Markup >>};
<<- end >>
\end{axis}
\end{tikzpicture}
\end{document}
`))

// coords renders (x,y) pairs for \addplot coordinates.
func coords(xs, ys []float64) string {
	var sb strings.Builder
	for i := range xs {
		fmt.Fprintf(&sb, "(%s,%s) ",
			strconv.FormatFloat(xs[i], 'g', -1, 64), strconv.FormatFloat(ys[i], 'g', -1, 64))
	}

	return strings.TrimSpace(sb.String())
}

// latexDoc is the template input.
type latexDoc struct {
	Config
	CurveX, CurveY []float64
	X, Y           []float64
	Table          *table.Table
}

// Anchor is the TikZ anchor matching the table alignment (hanging below).
func (d latexDoc) Anchor() string {
	if d.Table != nil && d.Table.Align == table.AlignRight {
		return "north east"
	}

	return "north west"
}

// latexBackend collects drawing commands, then compiles one document.
type latexBackend struct {
	doc latexDoc
}

func newLaTeXBackend(cfg Config) *latexBackend {
	return &latexBackend{doc: latexDoc{Config: cfg}}
}

func (b *latexBackend) SetLabels(x, y string) {
	b.doc.XLabel, b.doc.YLabel = x, y
}

func (b *latexBackend) Curve(xs, ys []float64) error {
	b.doc.CurveX, b.doc.CurveY = xs, ys

	return nil
}

func (b *latexBackend) Markers(xs, ys []float64) error {
	b.doc.X, b.doc.Y = xs, ys

	return nil
}

func (b *latexBackend) Annotate(t *table.Table) error {
	b.doc.Table = t

	return nil
}

// source executes the document template.
func (b *latexBackend) source() ([]byte, error) {
	var buf bytes.Buffer
	if err := pgfTemplate.Execute(&buf, b.doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Export compiles in a scratch directory and copies the PDF to path.
//
// Errors:
//   - non-.pdf path, template failure, missing or failing compiler
//     (the compiler log is attached), copy failure.
func (b *latexBackend) Export(path string) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return fmt.Errorf("latex engine writes PDF only, got %q", ext)
	}
	src, err := b.source()
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}

	dir, err := os.MkdirTemp("", "lvfit-latex-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	if err = os.WriteFile(filepath.Join(dir, texName+".tex"), src, 0o600); err != nil {
		return err
	}

	cmd := exec.Command(b.doc.LaTeXCommand,
		"-interaction=nonstopmode", "-halt-on-error",
		"-output-directory", dir, texName+".tex")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w\n%s", b.doc.LaTeXCommand, err, tail(out, 20))
	}

	pdf, err := os.ReadFile(filepath.Join(dir, texName+".pdf"))
	if err != nil {
		return err
	}

	return os.WriteFile(path, pdf, 0o644)
}

// tail keeps the last n lines of a compiler log.
func tail(out []byte, n int) string {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.Join(lines, "\n")
}
