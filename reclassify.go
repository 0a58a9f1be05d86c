package codeshot

// definitionKeywords introduce a name in definition position.
var definitionKeywords = map[string]bool{
	"def":   true,
	"class": true,
}

// Reclassify upgrades the span immediately following a definition keyword
// from CategoryDefault to CategoryFunction, in a single left-to-right pass
// with one token of lookback.
//
// Known limitation: only adjacency is considered, not grammar, so a
// rearranged definition (for example a name separated from its keyword by
// an intervening token) is not upgraded, and an upgraded span is whatever
// token happens to follow the keyword. Running Reclassify on its own
// output is a no-op because the rule only fires on CategoryDefault.
func Reclassify(lines []string, spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	var prevCat Category
	var prevText string
	for _, s := range spans {
		if prevCat == CategoryKeyword && definitionKeywords[prevText] && s.Category == CategoryDefault {
			s.Category = CategoryFunction
		}
		out = append(out, s)
		prevCat, prevText = s.Category, spanText(lines, s)
	}
	return out
}

// spanText extracts the source text a span covers, tolerating spans that
// point past a truncated line slice.
func spanText(lines []string, s Span) string {
	if s.StartRow < 1 || s.StartRow > len(lines) {
		return ""
	}
	line := lines[s.StartRow-1]
	start, end := s.StartCol, s.EndCol
	if s.EndRow != s.StartRow {
		end = len(line)
	}
	if start < 0 || start > len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	if end < start {
		return ""
	}
	return line[start:end]
}
