package layout

import (
	"fmt"
	"strings"

	"github.com/fwojciec/codeshot"
)

// ContinuationMarker prefixes the content of wrapped continuation lines,
// after the configured indent. It renders in the line-number color so
// wrapped overflow reads as chrome, not source text.
const ContinuationMarker = "↪ "

// Assembler runs the full pipeline for one source unit: classify,
// reclassify, segment, wrap, render, and frame. An Assembler holds no
// per-invocation state and may be reused across files.
type Assembler struct {
	classifier codeshot.Classifier
	renderer   codeshot.Renderer
	palette    codeshot.Palette
	config     codeshot.Config
}

// NewAssembler validates the palette and config up front so an unmapped
// category or bad width surfaces before any file is processed.
func NewAssembler(cl codeshot.Classifier, r codeshot.Renderer, p codeshot.Palette, cfg codeshot.Config) (*Assembler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Assembler{classifier: cl, renderer: r, palette: p, config: cfg}, nil
}

// Preamble returns the one-time declarations for the target dialect.
func (a *Assembler) Preamble() (string, error) {
	return a.renderer.Preamble(a.palette, a.config.FontMode)
}

// Assemble produces the framed, line-numbered output block for one source
// unit. name appears in the title bar only. The line-number column stays
// strictly 1:1 with the rendered physical lines: continuation lines get a
// placeholder entry, and a blank source line flows through wrapping as a
// single empty physical line so vertical rhythm is preserved.
func (a *Assembler) Assemble(name, source string) (string, error) {
	lines := strings.Split(strings.TrimSuffix(source, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	spans := codeshot.Reclassify(lines, a.classifier.Classify(source))

	var linenos, code []string
	for i, line := range lines {
		n := i + 1
		for _, phys := range Wrap(SegmentLine(line, n, spans), a.config.MaxVisibleWidth) {
			segs := phys.Segments
			lineNo := n
			if phys.Continuation {
				lineNo = 0
				marker := codeshot.Segment{
					Text:     a.config.ContinuationIndent + ContinuationMarker,
					Category: codeshot.CategoryLineNo,
				}
				segs = append([]codeshot.Segment{marker}, segs...)
			}
			rendered, err := a.renderer.Segments(a.palette, segs)
			if err != nil {
				return "", fmt.Errorf("render line %d: %w", n, err)
			}
			entry, err := a.renderer.LineNumber(a.palette, lineNo)
			if err != nil {
				return "", fmt.Errorf("render line number %d: %w", n, err)
			}
			code = append(code, rendered)
			linenos = append(linenos, entry)
		}
	}

	out, err := a.renderer.Frame(a.palette, name, linenos, code)
	if err != nil {
		return "", fmt.Errorf("frame %s: %w", name, err)
	}
	return out, nil
}
