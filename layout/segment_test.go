package layout_test

import (
	"testing"

	"github.com/fwojciec/codeshot"
	"github.com/fwojciec/codeshot/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(row, start, end int, cat codeshot.Category) codeshot.Span {
	return codeshot.Span{StartRow: row, StartCol: start, EndRow: row, EndCol: end, Category: cat}
}

func joined(segs []codeshot.Segment) string {
	var out string
	for _, s := range segs {
		out += s.Text
	}
	return out
}

func TestSegmentLine_CoverageInvariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		spans []codeshot.Span
	}{
		{
			name: "full coverage",
			line: "def add(a, b):",
			spans: []codeshot.Span{
				span(1, 0, 3, codeshot.CategoryKeyword),
				span(1, 4, 7, codeshot.CategoryFunction),
				span(1, 7, 8, codeshot.CategoryBracket),
				span(1, 8, 9, codeshot.CategoryDefault),
				span(1, 9, 10, codeshot.CategoryOperator),
				span(1, 11, 12, codeshot.CategoryDefault),
				span(1, 12, 13, codeshot.CategoryBracket),
				span(1, 13, 14, codeshot.CategoryOperator),
			},
		},
		{
			name: "gaps become filler",
			line: "    return w  # done",
			spans: []codeshot.Span{
				span(1, 4, 10, codeshot.CategoryKeyword),
				span(1, 14, 20, codeshot.CategoryComment),
			},
		},
		{
			name:  "no spans at all",
			line:  "anything goes here",
			spans: nil,
		},
		{
			name: "trailing uncovered text",
			line: "x = foo",
			spans: []codeshot.Span{
				span(1, 0, 1, codeshot.CategoryDefault),
				span(1, 2, 3, codeshot.CategoryOperator),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			segs := layout.SegmentLine(tt.line, 1, tt.spans)
			assert.Equal(t, tt.line, joined(segs), "segments must reproduce the line exactly")
			for _, s := range segs {
				assert.NotEmpty(t, s.Text)
			}
		})
	}
}

func TestSegmentLine_GapFillerIsDefault(t *testing.T) {
	t.Parallel()

	line := "    return w"
	segs := layout.SegmentLine(line, 1, []codeshot.Span{
		span(1, 4, 10, codeshot.CategoryKeyword),
	})

	require.Len(t, segs, 3)
	assert.Equal(t, codeshot.Segment{Text: "    ", Category: codeshot.CategoryDefault}, segs[0])
	assert.Equal(t, codeshot.Segment{Text: "return", Category: codeshot.CategoryKeyword}, segs[1])
	assert.Equal(t, codeshot.Segment{Text: " w", Category: codeshot.CategoryDefault}, segs[2])
}

func TestSegmentLine_UnsortedSpans(t *testing.T) {
	t.Parallel()

	line := "a + b"
	segs := layout.SegmentLine(line, 1, []codeshot.Span{
		span(1, 4, 5, codeshot.CategoryDefault),
		span(1, 0, 1, codeshot.CategoryDefault),
		span(1, 2, 3, codeshot.CategoryOperator),
	})

	assert.Equal(t, line, joined(segs))
	for i := 1; i < len(segs); i++ {
		assert.NotEmpty(t, segs[i].Text)
	}
}

func TestSegmentLine_DropsRowCrossingSpans(t *testing.T) {
	t.Parallel()

	line := `x = """doc`
	segs := layout.SegmentLine(line, 1, []codeshot.Span{
		span(1, 0, 1, codeshot.CategoryDefault),
		{StartRow: 1, StartCol: 4, EndRow: 2, EndCol: 3, Category: codeshot.CategoryString},
	})

	// The multi-line string span is dropped; its text becomes filler.
	assert.Equal(t, line, joined(segs))
	for _, s := range segs {
		assert.NotEqual(t, codeshot.CategoryString, s.Category)
	}
}

func TestSegmentLine_ClampsSpansPastLineEnd(t *testing.T) {
	t.Parallel()

	line := "short"
	segs := layout.SegmentLine(line, 1, []codeshot.Span{
		span(1, 0, 50, codeshot.CategoryKeyword),
		span(1, 60, 70, codeshot.CategoryComment),
	})

	assert.Equal(t, line, joined(segs))
}

func TestSegmentLine_OtherRowsIgnored(t *testing.T) {
	t.Parallel()

	line := "y = 2"
	segs := layout.SegmentLine(line, 2, []codeshot.Span{
		span(1, 0, 1, codeshot.CategoryKeyword),
		span(2, 0, 1, codeshot.CategoryDefault),
		span(3, 0, 1, codeshot.CategoryComment),
	})

	assert.Equal(t, line, joined(segs))
	assert.Equal(t, codeshot.CategoryDefault, segs[0].Category)
}

func TestSegmentLine_EmptyLine(t *testing.T) {
	t.Parallel()

	assert.Empty(t, layout.SegmentLine("", 1, nil))
}
