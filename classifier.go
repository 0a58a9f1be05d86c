package codeshot

// Classifier scans raw source text into an ordered sequence of classified
// spans, sorted by (StartRow, StartCol).
//
// Classification is fail-soft: on a fatal lexical error implementations
// return the spans produced before the error point rather than failing.
// Text not covered by any span renders as CategoryDefault downstream, so a
// truncated span sequence degrades to unstyled output, never to an abort.
type Classifier interface {
	Classify(source string) []Span
}
