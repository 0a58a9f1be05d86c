// Package layout turns classified spans into framed, line-numbered,
// width-wrapped output: per-line segmentation, greedy wrapping, and
// assembly of the final document block.
package layout

import (
	"slices"

	"github.com/fwojciec/codeshot"
)

// SegmentLine decomposes one source line into segments covering every byte
// of the line exactly once. Spans that cross a row boundary are dropped;
// gaps between spans and trailing uncovered text become default-category
// filler.
func SegmentLine(line string, lineNo int, spans []codeshot.Span) []codeshot.Segment {
	var relevant []codeshot.Span
	for _, s := range spans {
		if s.OnRow(lineNo) {
			relevant = append(relevant, s)
		}
	}
	slices.SortStableFunc(relevant, func(a, b codeshot.Span) int {
		return a.StartCol - b.StartCol
	})

	var segs []codeshot.Segment
	cursor := 0
	for _, s := range relevant {
		start, end := s.StartCol, s.EndCol
		// Clamp spans a fail-soft classifier may have left pointing past
		// the line, and skip any overlap with an already-emitted span.
		if start < cursor {
			start = cursor
		}
		if end > len(line) {
			end = len(line)
		}
		if end <= start {
			continue
		}
		if start > cursor {
			segs = append(segs, codeshot.Segment{Text: line[cursor:start], Category: codeshot.CategoryDefault})
		}
		segs = append(segs, codeshot.Segment{Text: line[start:end], Category: s.Category})
		cursor = end
	}
	if cursor < len(line) {
		segs = append(segs, codeshot.Segment{Text: line[cursor:], Category: codeshot.CategoryDefault})
	}
	return segs
}
