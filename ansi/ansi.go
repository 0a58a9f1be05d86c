// Package ansi renders styled segments as a truecolor terminal code
// window, mirroring the LaTeX dialect's framing: traffic-light buttons,
// filename title bar, separator rule, and a line-number gutter.
package ansi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/codeshot"
)

// Compile-time interface verification.
var _ codeshot.Renderer = (*Renderer)(nil)

// Renderer emits the ANSI dialect. It is stateless.
type Renderer struct{}

// New creates an ANSI renderer.
func New() *Renderer {
	return &Renderer{}
}

func style(p codeshot.Palette, c codeshot.Category) (lipgloss.Style, error) {
	rgb, err := p.Color(c)
	if err != nil {
		return lipgloss.Style{}, err
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex())), nil
}

// Preamble is empty: a terminal needs no one-time declarations, and an
// empty preamble concatenates with any Frame output unchanged.
func (r *Renderer) Preamble(p codeshot.Palette, _ codeshot.FontMode) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return "", nil
}

// Segments renders one physical line, coloring each fragment. No character
// is structurally significant in the ANSI dialect, so text passes through
// unescaped. Empty-text segments emit nothing.
func (r *Renderer) Segments(p codeshot.Palette, segs []codeshot.Segment) (string, error) {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		st, err := style(p, seg.Category)
		if err != nil {
			return "", err
		}
		b.WriteString(st.Render(seg.Text))
	}
	return b.String(), nil
}

// LineNumber renders a right-aligned gutter entry; non-positive n yields
// the blank placeholder used next to continuation lines.
func (r *Renderer) LineNumber(p codeshot.Palette, n int) (string, error) {
	st, err := style(p, codeshot.CategoryLineNo)
	if err != nil {
		return "", err
	}
	if n <= 0 {
		return strings.Repeat(" ", 4), nil
	}
	return st.Render(fmt.Sprintf("%4d", n)), nil
}

// Frame joins the aligned columns under a title bar with traffic-light
// buttons and a separator rule sized to the widest rendered line.
func (r *Renderer) Frame(p codeshot.Palette, name string, linenos, code []string) (string, error) {
	if len(linenos) != len(code) {
		return "", fmt.Errorf("line number column has %d entries for %d code lines: %w",
			len(linenos), len(code), codeshot.ErrValidation)
	}

	red, err := style(p, codeshot.CategoryBtnRed)
	if err != nil {
		return "", err
	}
	yellow, err := style(p, codeshot.CategoryBtnYellow)
	if err != nil {
		return "", err
	}
	green, err := style(p, codeshot.CategoryBtnGreen)
	if err != nil {
		return "", err
	}
	muted, err := style(p, codeshot.CategoryLineNo)
	if err != nil {
		return "", err
	}
	title, err := style(p, codeshot.CategoryDefault)
	if err != nil {
		return "", err
	}

	var rows []string
	for i := range code {
		rows = append(rows, linenos[i]+"  "+code[i])
	}

	width := lipgloss.Width(red.Render("●") + "  " + title.Render(name))
	for _, row := range rows {
		if w := lipgloss.Width(row); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(red.Render("●") + " " + yellow.Render("●") + " " + green.Render("●"))
	b.WriteString("  " + title.Render(name) + "\n")
	b.WriteString(muted.Render(strings.Repeat("─", width)) + "\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String(), nil
}
