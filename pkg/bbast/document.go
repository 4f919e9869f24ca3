// Package bbast provides the core BBCode document representation for gobbmd.
// It defines a lossless view of a parsed document:
// - Document: raw buffer, token stream, and tree root
// - Token stream: element and text spans in source order
// - Tree nodes: structural representation referencing buffer spans
package bbast

// Document is the parse result for one BBCode input. It owns the raw buffer
// that every token and node span points into; the buffer, token stream, and
// tree share one lifetime and are released together.
type Document struct {
	// Path is the source path (may be empty for in-memory content).
	Path string

	// Buf is the raw buffer accumulated during tokenization. It holds the
	// source bytes with escape backslashes dropped, so content spans stay
	// contiguous.
	Buf []byte

	// Tokens is the token stream in source order, with adjacent text
	// tokens coalesced.
	Tokens []Token

	// Root is the tree root (Document node).
	Root *Node
}

// NewDocument creates a Document over an already-accumulated buffer.
// The token stream and tree are filled in by the parser.
func NewDocument(path string, buf []byte) *Document {
	return &Document{
		Path: path,
		Buf:  buf,
	}
}
