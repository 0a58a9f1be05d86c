// Package python classifies Python source text into styled spans without
// building an AST. The rule table mirrors what an editor highlighter needs:
// comments, strings, numbers, keywords, well-known type names, brackets,
// and operators; everything else is default text.
package python

// keywords is the Python reserved-word set.
var keywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true,
	"def": true, "del": true,
	"elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true,
	"or": true, "pass": true, "raise": true, "return": true,
	"try": true, "while": true, "with": true, "yield": true,
}

// builtinTypes are builtin type and exception names styled as types.
var builtinTypes = map[string]bool{
	"int": true, "float": true, "str": true, "bool": true,
	"list": true, "dict": true, "set": true, "tuple": true,
	"bytes": true, "bytearray": true, "complex": true,
	"type": true, "object": true,
	"Exception": true, "ValueError": true, "TypeError": true,
	"KeyError": true, "IndexError": true, "AttributeError": true,
	"RuntimeError": true, "StopIteration": true, "OSError": true,
	"IOError": true, "FileNotFoundError": true, "NotImplementedError": true,
}
