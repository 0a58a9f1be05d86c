package python

import (
	"strings"

	"github.com/fwojciec/codeshot"
)

// Compile-time interface verification.
var _ codeshot.Classifier = (*Classifier)(nil)

// Classifier is a line-oriented Python scanner. Spans never cross rows: a
// triple-quoted string spanning several rows is emitted as one string span
// per row it covers.
type Classifier struct{}

// New creates a Python classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify scans source into ordered spans. Scanning is fail-soft: an
// unterminated single-quoted string is a fatal lexical error, and Classify
// returns the spans produced before it. Columns are byte offsets.
func (c *Classifier) Classify(source string) []codeshot.Span {
	lines := strings.Split(source, "\n")
	var spans []codeshot.Span
	var open string // delimiter of an unclosed triple-quoted string
	for i, line := range lines {
		row := i + 1
		var fatal bool
		spans, open, fatal = scanLine(spans, row, line, open)
		if fatal {
			return spans
		}
	}
	return spans
}

// scanLine scans one row, appending spans. open carries the delimiter of a
// triple-quoted string left unclosed by a previous row, or "".
func scanLine(spans []codeshot.Span, row int, line, open string) ([]codeshot.Span, string, bool) {
	emit := func(start, end int, cat codeshot.Category) {
		if end > start {
			spans = append(spans, codeshot.Span{
				StartRow: row, StartCol: start,
				EndRow: row, EndCol: end,
				Category: cat,
			})
		}
	}

	i := 0
	if open != "" {
		idx := strings.Index(line, open)
		if idx < 0 {
			emit(0, len(line), codeshot.CategoryString)
			return spans, open, false
		}
		emit(0, idx+len(open), codeshot.CategoryString)
		i = idx + len(open)
		open = ""
	}

	for i < len(line) {
		ch := line[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			i++

		case ch == '#':
			emit(i, len(line), codeshot.CategoryComment)
			i = len(line)

		case ch == '\'' || ch == '"':
			end, delim, ok := scanString(line, i)
			if !ok && delim == "" {
				// Unterminated single-quoted string: truncate here.
				return spans, "", true
			}
			emit(i, end, codeshot.CategoryString)
			i = end
			if !ok {
				open = delim
			}

		case isDigit(ch) || (ch == '.' && i+1 < len(line) && isDigit(line[i+1])):
			end := scanNumber(line, i)
			emit(i, end, codeshot.CategoryNumber)
			i = end

		case isIdentStart(ch):
			end := scanIdent(line, i)
			// A short letter prefix directly on a quote starts a string
			// literal (r"...", b'...', f"...", rb"...").
			if end-i <= 2 && end < len(line) && (line[end] == '\'' || line[end] == '"') && isStringPrefix(line[i:end]) {
				send, delim, ok := scanString(line, end)
				if !ok && delim == "" {
					return spans, "", true
				}
				emit(i, send, codeshot.CategoryString)
				i = send
				if !ok {
					open = delim
				}
				continue
			}
			word := line[i:end]
			cat := codeshot.CategoryDefault
			switch {
			case keywords[word]:
				cat = codeshot.CategoryKeyword
			case builtinTypes[word]:
				cat = codeshot.CategoryType
			}
			emit(i, end, cat)
			i = end

		case isBracket(ch):
			emit(i, i+1, codeshot.CategoryBracket)
			i++

		case isOperator(ch):
			end := i + 1
			for end < len(line) && isOperator(line[end]) {
				end++
			}
			emit(i, end, codeshot.CategoryOperator)
			i = end

		default:
			// Unrecognized byte: classify as default and keep going.
			emit(i, i+1, codeshot.CategoryDefault)
			i++
		}
	}
	return spans, open, false
}

// scanString scans a string literal whose opening quote is at qi. It
// returns the end offset, the triple-quote delimiter when the literal runs
// past the row, and whether the literal terminated on this row. An
// unterminated single-quoted literal returns ok=false with an empty
// delimiter.
func scanString(line string, qi int) (end int, delim string, ok bool) {
	q := line[qi]
	if qi+2 < len(line) && line[qi+1] == q && line[qi+2] == q {
		d := line[qi : qi+3]
		if idx := indexUnescaped(line[qi+3:], d); idx >= 0 {
			return qi + 3 + idx + 3, "", true
		}
		return len(line), d, false
	}
	j := qi + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			j += 2
		case q:
			return j + 1, "", true
		default:
			j++
		}
	}
	return len(line), "", false
}

// indexUnescaped finds delim in s, skipping backslash escapes.
func indexUnescaped(s, delim string) int {
	for j := 0; j < len(s); {
		if s[j] == '\\' {
			j += 2
			continue
		}
		if strings.HasPrefix(s[j:], delim) {
			return j
		}
		j++
	}
	return -1
}

// scanNumber consumes a numeric literal: decimal, float with exponent,
// hex/oct/bin with underscores, imaginary suffix.
func scanNumber(line string, i int) int {
	radix := i+1 < len(line) && line[i] == '0' &&
		(line[i+1] == 'x' || line[i+1] == 'X' || line[i+1] == 'o' ||
			line[i+1] == 'O' || line[i+1] == 'b' || line[i+1] == 'B')
	j := i
	for j < len(line) {
		ch := line[j]
		switch {
		case isDigit(ch) || isLetter(ch) || ch == '_' || ch == '.':
			j++
		case (ch == '+' || ch == '-') && !radix && j > i && (line[j-1] == 'e' || line[j-1] == 'E'):
			j++
		default:
			return j
		}
	}
	return j
}

// scanIdent consumes an identifier starting at i.
func scanIdent(line string, i int) int {
	j := i
	for j < len(line) && isIdentCont(line[j]) {
		j++
	}
	return j
}

func isStringPrefix(s string) bool {
	for k := 0; k < len(s); k++ {
		switch s[k] {
		case 'r', 'R', 'b', 'B', 'f', 'F', 'u', 'U':
		default:
			return false
		}
	}
	return true
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// Bytes >= 0x80 continue a UTF-8 rune; Python identifiers may contain them.
func isIdentStart(ch byte) bool { return isLetter(ch) || ch == '_' || ch >= 0x80 }

func isIdentCont(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

func isBracket(ch byte) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~',
		'@', ':', ';', ',', '.', '\\':
		return true
	}
	return false
}
