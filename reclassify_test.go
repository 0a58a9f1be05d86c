package codeshot_test

import (
	"testing"

	"github.com/fwojciec/codeshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(row, start, end int, cat codeshot.Category) codeshot.Span {
	return codeshot.Span{StartRow: row, StartCol: start, EndRow: row, EndCol: end, Category: cat}
}

func TestReclassify_FunctionDefinition(t *testing.T) {
	t.Parallel()

	lines := []string{"def add(a, b):"}
	spans := []codeshot.Span{
		span(1, 0, 3, codeshot.CategoryKeyword),  // def
		span(1, 4, 7, codeshot.CategoryDefault),  // add
		span(1, 7, 8, codeshot.CategoryBracket),  // (
		span(1, 8, 9, codeshot.CategoryDefault),  // a
		span(1, 9, 10, codeshot.CategoryOperator), // ,
		span(1, 11, 12, codeshot.CategoryDefault), // b
		span(1, 12, 13, codeshot.CategoryBracket), // )
		span(1, 13, 14, codeshot.CategoryOperator), // :
	}

	got := codeshot.Reclassify(lines, spans)

	require.Len(t, got, len(spans))
	assert.Equal(t, codeshot.CategoryFunction, got[1].Category, "name after def is upgraded")
	assert.Equal(t, codeshot.CategoryDefault, got[3].Category, "parameter a stays default")
	assert.Equal(t, codeshot.CategoryDefault, got[5].Category, "parameter b stays default")
}

func TestReclassify_ClassDefinition(t *testing.T) {
	t.Parallel()

	lines := []string{"class Model:"}
	spans := []codeshot.Span{
		span(1, 0, 5, codeshot.CategoryKeyword),
		span(1, 6, 11, codeshot.CategoryDefault),
		span(1, 11, 12, codeshot.CategoryOperator),
	}

	got := codeshot.Reclassify(lines, spans)

	assert.Equal(t, codeshot.CategoryFunction, got[1].Category)
}

func TestReclassify_NonDefinitionKeyword(t *testing.T) {
	t.Parallel()

	lines := []string{"import os"}
	spans := []codeshot.Span{
		span(1, 0, 6, codeshot.CategoryKeyword),
		span(1, 7, 9, codeshot.CategoryDefault),
	}

	got := codeshot.Reclassify(lines, spans)

	assert.Equal(t, codeshot.CategoryDefault, got[1].Category, "import does not introduce a definition")
}

func TestReclassify_OnlyFiresOnDefault(t *testing.T) {
	t.Parallel()

	// "def int" is nonsense but exercises the rule: the token after def is
	// already classified, so it is left alone.
	lines := []string{"def int"}
	spans := []codeshot.Span{
		span(1, 0, 3, codeshot.CategoryKeyword),
		span(1, 4, 7, codeshot.CategoryType),
	}

	got := codeshot.Reclassify(lines, spans)

	assert.Equal(t, codeshot.CategoryType, got[1].Category)
}

func TestReclassify_OnlyImmediateToken(t *testing.T) {
	t.Parallel()

	lines := []string{"def add(a):"}
	spans := []codeshot.Span{
		span(1, 0, 3, codeshot.CategoryKeyword),
		span(1, 4, 7, codeshot.CategoryDefault),
		span(1, 7, 8, codeshot.CategoryBracket),
		span(1, 8, 9, codeshot.CategoryDefault),
	}

	got := codeshot.Reclassify(lines, spans)

	assert.Equal(t, codeshot.CategoryFunction, got[1].Category)
	assert.Equal(t, codeshot.CategoryDefault, got[3].Category, "only the token adjacent to def is upgraded")
}

func TestReclassify_Idempotent(t *testing.T) {
	t.Parallel()

	lines := []string{"def add(a, b):", "class Model:"}
	spans := []codeshot.Span{
		span(1, 0, 3, codeshot.CategoryKeyword),
		span(1, 4, 7, codeshot.CategoryDefault),
		span(2, 0, 5, codeshot.CategoryKeyword),
		span(2, 6, 11, codeshot.CategoryDefault),
	}

	once := codeshot.Reclassify(lines, spans)
	twice := codeshot.Reclassify(lines, once)

	assert.Equal(t, once, twice)
}

func TestReclassify_SpanPastTruncatedLine(t *testing.T) {
	t.Parallel()

	// Spans that point beyond the available lines must not panic.
	lines := []string{"def"}
	spans := []codeshot.Span{
		span(1, 0, 3, codeshot.CategoryKeyword),
		span(3, 0, 4, codeshot.CategoryDefault),
		span(3, 10, 20, codeshot.CategoryDefault),
	}

	got := codeshot.Reclassify(lines, spans)

	require.Len(t, got, 3)
	assert.Equal(t, codeshot.CategoryFunction, got[1].Category)
}
