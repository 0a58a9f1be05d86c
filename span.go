package codeshot

// Category is a presentational tag assigned to a range of source text.
// It carries no semantic meaning beyond selecting a color from the Palette.
type Category int

const (
	CategoryDefault Category = iota
	CategoryKeyword
	CategoryFunction
	CategoryType
	CategoryNumber
	CategoryString
	CategoryComment
	CategoryOperator
	CategoryBracket
	CategoryDecorator
	CategoryLineNo
	CategorySelection
	CategoryBackground
	CategoryFrame
	CategoryBtnRed
	CategoryBtnYellow
	CategoryBtnGreen
)

// String returns the category's identifier. Color names in every output
// dialect are derived mechanically from this identifier, so renaming a
// category here renames its color everywhere.
func (c Category) String() string {
	switch c {
	case CategoryDefault:
		return "default"
	case CategoryKeyword:
		return "keyword"
	case CategoryFunction:
		return "function"
	case CategoryType:
		return "type"
	case CategoryNumber:
		return "number"
	case CategoryString:
		return "string"
	case CategoryComment:
		return "comment"
	case CategoryOperator:
		return "operator"
	case CategoryBracket:
		return "bracket"
	case CategoryDecorator:
		return "decorator"
	case CategoryLineNo:
		return "lineno"
	case CategorySelection:
		return "selection"
	case CategoryBackground:
		return "background"
	case CategoryFrame:
		return "frame"
	case CategoryBtnRed:
		return "btnRed"
	case CategoryBtnYellow:
		return "btnYellow"
	case CategoryBtnGreen:
		return "btnGreen"
	default:
		return "unknown"
	}
}

// AllCategories returns every category in declaration order. The Palette
// must cover all of them; renderers iterate this list so preamble output
// is deterministic.
func AllCategories() []Category {
	return []Category{
		CategoryDefault,
		CategoryKeyword,
		CategoryFunction,
		CategoryType,
		CategoryNumber,
		CategoryString,
		CategoryComment,
		CategoryOperator,
		CategoryBracket,
		CategoryDecorator,
		CategoryLineNo,
		CategorySelection,
		CategoryBackground,
		CategoryFrame,
		CategoryBtnRed,
		CategoryBtnYellow,
		CategoryBtnGreen,
	}
}

// Span is a classified range of source text. Rows are 1-based, columns are
// 0-based byte offsets, half-open [StartCol, EndCol). A span produced by
// the classifiers in this module never crosses a row boundary.
type Span struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
	Category Category
}

// OnRow reports whether the span starts and ends on the given 1-based row.
func (s Span) OnRow(row int) bool {
	return s.StartRow == row && s.EndRow == row
}
