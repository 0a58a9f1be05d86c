package codeshot

// Segment is a line-local fragment of source text paired with the category
// it renders as. The segments produced for one line are contiguous and
// concatenate back to the original line text exactly.
type Segment struct {
	Text     string
	Category Category
}

// PhysicalLine is one rendered output line. A logical source line expands
// into one or more physical lines when it exceeds the width budget; exactly
// the first of them is non-continuation.
type PhysicalLine struct {
	Segments     []Segment
	Continuation bool
}

// Text concatenates the segment texts of a physical line. Continuation
// markers are not part of the segments, so this is pure source content.
func (p PhysicalLine) Text() string {
	var out string
	for _, s := range p.Segments {
		out += s.Text
	}
	return out
}
