package layout

import (
	"unicode/utf8"

	"github.com/fwojciec/codeshot"
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Break-preferred characters: a split inside an offending segment lands
// just after the last of these within the budget.
func isBreakChar(r rune) bool {
	return r == ' ' || r == '\t' || r == ',' || r == '('
}

// Width returns the visible display width of s, counting content cells
// only. Width is accumulated from the text itself rather than recovered
// from rendered markup, so it is independent of any renderer's escaping.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// SegmentsWidth returns the combined visible width of a segment list.
func SegmentsWidth(segs []codeshot.Segment) int {
	total := 0
	for _, s := range segs {
		total += Width(s.Text)
	}
	return total
}

// Wrap splits a line's segments into physical lines of at most width
// visible cells. The algorithm is greedy: segments accumulate until one
// would overflow, then that segment is split at its last break-preferred
// character within the remaining budget, or at the segment boundary, or as
// a hard cut when a single unbreakable token exceeds the whole budget.
// Both halves of a split keep the original segment's category.
//
// Always returns at least one physical line; exactly the first is
// non-continuation. Continuation markers are added by the assembler and
// are not counted against width.
func Wrap(segs []codeshot.Segment, width int) []codeshot.PhysicalLine {
	if width < 1 {
		width = 1
	}

	lines := []codeshot.PhysicalLine{{}}
	cur := 0
	curWidth := 0
	newline := func() {
		lines = append(lines, codeshot.PhysicalLine{Continuation: true})
		cur++
		curWidth = 0
	}

	queue := make([]codeshot.Segment, len(segs))
	copy(queue, segs)

	for len(queue) > 0 {
		seg := queue[0]
		queue = queue[1:]
		if seg.Text == "" {
			continue
		}

		w := Width(seg.Text)
		if curWidth+w <= width {
			lines[cur].Segments = append(lines[cur].Segments, seg)
			curWidth += w
			continue
		}

		if head, tail := splitAtBreak(seg.Text, width-curWidth); head != "" {
			lines[cur].Segments = append(lines[cur].Segments, codeshot.Segment{Text: head, Category: seg.Category})
			queue = append([]codeshot.Segment{{Text: tail, Category: seg.Category}}, queue...)
			newline()
			continue
		}

		if len(lines[cur].Segments) > 0 {
			// Clean boundary available: push the whole segment to the
			// next line untouched.
			queue = append([]codeshot.Segment{seg}, queue...)
			newline()
			continue
		}

		// Unbreakable token wider than the whole budget: hard cut.
		head, tail := hardCut(seg.Text, width)
		lines[cur].Segments = append(lines[cur].Segments, codeshot.Segment{Text: head, Category: seg.Category})
		if tail != "" {
			queue = append([]codeshot.Segment{{Text: tail, Category: seg.Category}}, queue...)
		}
		newline()
	}

	// A trailing newline() leaves an empty continuation line behind.
	if n := len(lines); n > 1 && len(lines[n-1].Segments) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

// splitAtBreak finds the last break-preferred character whose position
// keeps the head within budget cells, and splits just after it. Returns an
// empty head when no acceptable break point exists.
func splitAtBreak(text string, budget int) (head, tail string) {
	if budget < 1 {
		return "", text
	}
	cut := -1
	w := 0
	for i, r := range text {
		w += rw.RuneWidth(r)
		if w > budget {
			break
		}
		if isBreakChar(r) {
			cut = i + utf8.RuneLen(r)
		}
	}
	if cut <= 0 || cut >= len(text) {
		return "", text
	}
	return text[:cut], text[cut:]
}

// hardCut severs text at the width boundary, keeping at least one rune so
// the wrap loop always makes progress.
func hardCut(text string, width int) (head, tail string) {
	w := 0
	for i, r := range text {
		w += rw.RuneWidth(r)
		if w > width && i > 0 {
			return text[:i], text[i:]
		}
	}
	return text, ""
}
