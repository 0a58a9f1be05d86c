package latex

import "strings"

// replacements maps every character that is structurally significant in
// the LaTeX dialect to its escaped form. Escaping is a single pass over
// the input, so replacement text containing further escapable characters
// (every entry here contains a backslash) can never be re-escaped.
var replacements = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'#':  `\#`,
	'^':  `\^{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
	'%':  `\%`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
	'|':  `\textbar{}`,
}

// Escape rewrites text so it renders verbatim in the LaTeX output.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
