package bbast

// Span identifies a half-open byte range [Start, End) within a Document
// buffer. Spans are the only representation of text in the token stream and
// the tree; content bytes are never copied out of the buffer during parsing.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Bytes resolves the span against the given buffer.
// Out-of-range spans resolve to nil rather than panicking.
func (s Span) Bytes(buf []byte) []byte {
	if s.Start < 0 || s.End > len(buf) || s.Start > s.End {
		return nil
	}
	return buf[s.Start:s.End]
}
