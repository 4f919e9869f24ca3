package bbast

// TokenKind classifies a token in the BBCode source.
type TokenKind uint8

const (
	// TokText is a run of ordinary content bytes.
	TokText TokenKind = iota

	// TokOpen is an opening tag such as [b] or [url=target].
	TokOpen

	// TokClose is a closing tag such as [/b].
	TokClose
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokText:
		return "text"
	case TokOpen:
		return "element-open"
	case TokClose:
		return "element-close"
	default:
		return "unknown"
	}
}

// Token is a classified span of the document buffer, produced in source
// order by the tokenizer.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Name is the tag name for element tokens, or the full content span
	// for text tokens.
	Name Span

	// Value is the parameter span for [name=value] style opening tags.
	// Only meaningful when HasValue is true.
	Value Span

	// HasValue reports whether the opening tag carried a parameter.
	HasValue bool

	// Raw covers the exact buffer bytes of the token, brackets included.
	// Unknown tags are passed through to the output from this span.
	Raw Span
}

// Text resolves the token's name span against the buffer. For text tokens
// this is the content; for element tokens it is the tag name.
func (t Token) Text(buf []byte) []byte {
	return t.Name.Bytes(buf)
}

// ValidateCoalesced checks the tokenizer's coalescing invariant:
// no two consecutive tokens are both text tokens.
func ValidateCoalesced(tokens []Token) bool {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Kind == TokText && tokens[i-1].Kind == TokText {
			return false
		}
	}
	return true
}
