package codeshot

// Renderer emits one target markup dialect. Implementations are stateless;
// the same Renderer may serve concurrent pipeline invocations.
//
// Concatenating the Preamble output with a Frame output must yield a valid
// standalone document body for the target dialect.
type Renderer interface {
	// Preamble emits the one-time declarations (color and font
	// definitions) a document author includes once.
	Preamble(p Palette, mode FontMode) (string, error)

	// Segments renders one physical line's segments, escaping every
	// character that is structurally significant in the target dialect.
	// Empty-text segments produce no output.
	Segments(p Palette, segs []Segment) (string, error)

	// LineNumber renders one line-number column entry. A non-positive n
	// renders the placeholder used for continuation lines.
	LineNumber(p Palette, n int) (string, error)

	// Frame wraps the aligned line-number and code columns in the window
	// chrome: title bar with the display name, separator, framing. The two
	// slices are index-aligned; callers guarantee equal length.
	Frame(p Palette, name string, linenos, code []string) (string, error)
}
