// Package latex renders styled segments as a LaTeX tcolorbox code window
// in the visual style of CodeImage's VSCode Dark theme: dark panel, macOS
// traffic-light buttons, filename tab, side-by-side line-number column.
// Output compiles with XeLaTeX or LuaLaTeX in primary font mode and with
// any engine in fallback mode.
package latex

import (
	"fmt"
	"strings"

	"github.com/fwojciec/codeshot"
)

// Compile-time interface verification.
var _ codeshot.Renderer = (*Renderer)(nil)

// Renderer emits the LaTeX dialect. It is stateless.
type Renderer struct{}

// New creates a LaTeX renderer.
func New() *Renderer {
	return &Renderer{}
}

// colorName derives the LaTeX color name for a category mechanically from
// the category identifier: "keyword" becomes csKeyword, "btnRed" becomes
// csBtnRed. No lookup table exists beyond the Palette itself.
func colorName(c codeshot.Category) string {
	id := c.String()
	return "cs" + strings.ToUpper(id[:1]) + id[1:]
}

// Preamble emits the color and font declarations plus the tcolorbox window
// styles. Concatenating this with a Frame result yields a valid document
// body (see Document for the standalone wrapper).
func (r *Renderer) Preamble(p codeshot.Palette, mode codeshot.FontMode) (string, error) {
	var b strings.Builder

	switch mode {
	case codeshot.FontPrimary:
		b.WriteString("\\usepackage{fontspec}\n")
		b.WriteString("\\setmonofont[Scale=0.85]{\"JetBrains Mono\"}\n")
	case codeshot.FontFallback:
		// Stock \ttfamily: compiles on engines without fontspec.
	default:
		return "", fmt.Errorf("unknown font mode %d: %w", mode, codeshot.ErrValidation)
	}

	b.WriteString("\\usepackage{xcolor}\n")
	for _, c := range codeshot.AllCategories() {
		rgb, err := p.Color(c)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\\definecolor{%s}{RGB}{%d,%d,%d}\n", colorName(c), rgb.R, rgb.G, rgb.B)
	}

	b.WriteString("\\usepackage{tikz}\n")
	b.WriteString("\\usepackage[most]{tcolorbox}\n")
	b.WriteString(`\tcbset{
  codewindow/.style={
    enhanced,
    arc=12pt, outer arc=12pt,
    boxrule=0pt,
    colback=` + colorName(codeshot.CategoryFrame) + `,
    colframe=` + colorName(codeshot.CategoryFrame) + `,
    left=28pt, right=28pt,
    top=12pt, bottom=24pt,
  },
  codepanel/.style={
    enhanced,
    arc=8pt, outer arc=8pt,
    boxrule=0pt,
    colback=` + colorName(codeshot.CategoryBackground) + `,
    colframe=` + colorName(codeshot.CategoryBackground) + `,
    left=8pt, right=8pt,
    top=10pt, bottom=10pt,
    fontupper=\ttfamily\footnotesize,
  },
}
`)
	return b.String(), nil
}

// Segments renders one physical line as a run of \textcolor fragments.
// Empty-text segments emit nothing.
func (r *Renderer) Segments(p codeshot.Palette, segs []codeshot.Segment) (string, error) {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		if _, err := p.Color(seg.Category); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\\textcolor{%s}{%s}", colorName(seg.Category), Escape(seg.Text))
	}
	return b.String(), nil
}

// LineNumber renders one line-number column entry; non-positive n yields
// the blank placeholder used next to continuation lines.
func (r *Renderer) LineNumber(p codeshot.Palette, n int) (string, error) {
	if _, err := p.Color(codeshot.CategoryLineNo); err != nil {
		return "", err
	}
	if n <= 0 {
		return `\strut`, nil
	}
	return fmt.Sprintf("\\textcolor{%s}{%d}", colorName(codeshot.CategoryLineNo), n), nil
}

// Frame wraps the aligned columns in the window chrome. linenos and code
// must be index-aligned; a mismatch is a programming error upstream.
func (r *Renderer) Frame(p codeshot.Palette, name string, linenos, code []string) (string, error) {
	if len(linenos) != len(code) {
		return "", fmt.Errorf("line number column has %d entries for %d code lines: %w",
			len(linenos), len(code), codeshot.ErrValidation)
	}
	for _, c := range []codeshot.Category{
		codeshot.CategoryFrame, codeshot.CategoryBackground, codeshot.CategoryDefault,
		codeshot.CategoryBtnRed, codeshot.CategoryBtnYellow, codeshot.CategoryBtnGreen,
	} {
		if _, err := p.Color(c); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.WriteString("\\begin{tcolorbox}[codewindow]\n\n")

	// macOS traffic-light buttons
	b.WriteString("  \\noindent\\hspace{4pt}%\n  \\tikz{\n")
	fmt.Fprintf(&b, "    \\fill[%s]    (0,0) circle (5pt);\n", colorName(codeshot.CategoryBtnRed))
	fmt.Fprintf(&b, "    \\fill[%s] (14pt,0) circle (5pt);\n", colorName(codeshot.CategoryBtnYellow))
	fmt.Fprintf(&b, "    \\fill[%s]  (28pt,0) circle (5pt);\n", colorName(codeshot.CategoryBtnGreen))
	b.WriteString("  }\n  \\vspace{10pt}\n\n")

	b.WriteString("  \\begin{tcolorbox}[codepanel]\n\n")

	// Filename tab
	fmt.Fprintf(&b, "    \\noindent{\\ttfamily\\scriptsize\\textcolor{%s}{%s}}\n",
		colorName(codeshot.CategoryDefault), Escape(name))
	b.WriteString("    \\vspace{4pt}\\hrule height 0.4pt \\vspace{6pt}\n\n")

	// Line numbers (right-aligned) | code
	b.WriteString("    \\noindent\n")
	b.WriteString("    \\begin{minipage}[t]{2.2em}\n")
	b.WriteString("      \\setlength{\\baselineskip}{1.45em}\n")
	b.WriteString("      \\raggedleft\n")
	writeColumn(&b, linenos)
	b.WriteString("    \\end{minipage}%\n")
	b.WriteString("    \\hspace{8pt}%\n")
	b.WriteString("    \\begin{minipage}[t]{\\dimexpr\\linewidth-2.2em-8pt\\relax}\n")
	b.WriteString("      \\setlength{\\baselineskip}{1.45em}\n")
	b.WriteString("      \\raggedright\n")
	writeColumn(&b, code)
	b.WriteString("    \\end{minipage}\n\n")

	b.WriteString("  \\end{tcolorbox}\n\n")
	b.WriteString("\\end{tcolorbox}\n")
	return b.String(), nil
}

// writeColumn emits one minipage column, one physical line per row. Empty
// entries become \strut so blank lines still occupy a row.
func writeColumn(b *strings.Builder, entries []string) {
	for _, e := range entries {
		if e == "" {
			e = `\strut`
		}
		b.WriteString(e)
		b.WriteString("\\\\\n")
	}
}

// Document wraps a preamble and a framed fragment in a standalone LaTeX
// document, the form the CLI writes to disk.
func Document(name, preamble, fragment string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%% Source: %s\n", name)
	b.WriteString("% Compile with: xelatex or lualatex\n")
	b.WriteString("\\documentclass{standalone}\n\n")
	b.WriteString(preamble)
	b.WriteString("\n\\begin{document}\n\n")
	b.WriteString(fragment)
	b.WriteString("\n\\end{document}\n")
	return b.String()
}
