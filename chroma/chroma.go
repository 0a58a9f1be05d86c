// Package chroma provides a classifier backed by the chroma syntax
// highlighting library, for source languages the builtin Python scanner
// does not cover.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/codeshot"
)

// Compile-time interface verification.
var _ codeshot.Classifier = (*Classifier)(nil)

// Classifier extracts spans using a chroma lexer for one language.
type Classifier struct {
	language string
}

// New creates a chroma-based classifier for the given language name.
func New(language string) *Classifier {
	return &Classifier{language: language}
}

// Supported reports whether chroma has a lexer for the language.
func Supported(language string) bool {
	return lexers.Get(language) != nil
}

// Classify tokenizes source and converts the token stream into positioned
// spans. Chroma tokens carry no positions, so rows and columns are
// reconstructed by walking the values; a token containing newlines is
// split into one span per row. Unknown languages and lexer errors yield no
// spans, degrading to unstyled output.
func (c *Classifier) Classify(source string) []codeshot.Span {
	lexer := lexers.Get(c.language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var spans []codeshot.Span
	row, col := 1, 0
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		cat := tokenCategory(token.Type)
		parts := strings.Split(token.Value, "\n")
		for pi, part := range parts {
			if strings.TrimSpace(part) != "" {
				spans = append(spans, codeshot.Span{
					StartRow: row, StartCol: col,
					EndRow: row, EndCol: col + len(part),
					Category: cat,
				})
			}
			col += len(part)
			if pi < len(parts)-1 {
				row++
				col = 0
			}
		}
	}
	return spans
}

// tokenCategory maps chroma token types onto the fixed category set.
func tokenCategory(tt chromalib.TokenType) codeshot.Category {
	switch {
	case tt == chromalib.NameFunction || tt == chromalib.NameFunctionMagic:
		return codeshot.CategoryFunction
	case tt == chromalib.NameClass || tt == chromalib.NameBuiltin || tt == chromalib.NameException:
		return codeshot.CategoryType
	case tt == chromalib.NameDecorator:
		return codeshot.CategoryDecorator
	case tt.InCategory(chromalib.Keyword):
		return codeshot.CategoryKeyword
	case tt.InCategory(chromalib.Comment):
		return codeshot.CategoryComment
	case tt.InSubCategory(chromalib.LiteralString):
		return codeshot.CategoryString
	case tt.InSubCategory(chromalib.LiteralNumber):
		return codeshot.CategoryNumber
	case tt == chromalib.Punctuation:
		return codeshot.CategoryBracket
	case tt.InCategory(chromalib.Operator):
		return codeshot.CategoryOperator
	default:
		return codeshot.CategoryDefault
	}
}
