package token

// Span is a piece of source text together with where it starts. Text is a
// slice of the source string and shares its memory; a Span never copies it.
//
// Pos may be nil for spans built outside of a tokenizer.
type Span struct {
	Text string
	Pos  *Pos
}

// Offset is the byte offset of the span in its source, or -1 when the span
// has no position.
func (s Span) Offset() int {
	if s.Pos == nil {
		return -1
	}
	return s.Pos.I
}

// End is the byte offset just past the span, or -1 when the span has no
// position.
func (s Span) End() int {
	if s.Pos == nil {
		return -1
	}
	return s.Pos.I + len(s.Text)
}

func (s Span) String() string {
	return s.Text
}
