// Package bbcode implements the BBCode parser for gobbmd: a single-pass,
// span-emitting tokenizer and a stack-based tree builder. Malformed markup
// never fails a parse; anything that does not validate as a tag degrades to
// ordinary text.
package bbcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yaklabco/gobbmd/pkg/bbast"
)

// tokenizer state machine states.
const (
	stateText = iota
	stateElement
	stateElementParam
	stateClosingElement
)

// tokenizer accumulates the raw buffer from a byte source and emits tokens
// as spans into it. Escape backslashes are dropped before the buffer, so
// text spans remain contiguous and coalescing can merge by extending ends.
type tokenizer struct {
	opts   Options
	buf    []byte
	tokens []bbast.Token

	state int

	// textStart is the buffer index where the pending text run begins.
	textStart int

	// elemStart is the buffer index of the '[' opening the current
	// candidate element; meaningful only outside stateText.
	elemStart int

	// valueStart is the buffer index where the candidate's parameter
	// begins, or -1 when no parameter separator has been seen.
	valueStart int

	// verbatim is the name of the currently open verbatim tag, or empty.
	verbatim string
}

// Tokenize consumes the byte source and produces the raw buffer plus the
// token stream. It fails only on a source read error; malformed markup is
// emitted as text.
func Tokenize(r io.Reader, opts Options) ([]byte, []bbast.Token, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read source: %w", err)
	}
	buf, tokens := tokenizeBytes(src, opts)
	return buf, tokens, nil
}

func tokenizeBytes(src []byte, opts Options) ([]byte, []bbast.Token) {
	const initialCapacityDivisor = 8
	t := &tokenizer{
		opts:       opts,
		buf:        make([]byte, 0, len(src)),
		tokens:     make([]bbast.Token, 0, len(src)/initialCapacityDivisor+1),
		valueStart: -1,
	}

	for i := 0; i < len(src); i++ {
		b := src[i]
		if b == '\\' && i+1 < len(src) {
			if isEscapable(src[i+1]) {
				// The backslash is dropped; the escaped byte is literal and
				// cannot trigger a state transition this iteration.
				t.consume(src[i+1], true)
			} else {
				// Any other pair is consumed together and emitted as-is, so
				// a doubled backslash cannot escape a bracket that follows.
				t.consume(b, false)
				t.consume(src[i+1], true)
			}
			i++
			continue
		}
		t.consume(b, false)
	}

	t.finish()
	return t.buf, t.tokens
}

// isEscapable reports whether a byte after a backslash suppresses tag
// interpretation.
func isEscapable(b byte) bool {
	return b == '[' || b == ']' || b == '=' || b == ' '
}

// consume appends one byte to the buffer and advances the state machine.
// literal bytes are appended without interpretation.
func (t *tokenizer) consume(b byte, literal bool) {
	idx := len(t.buf)
	t.buf = append(t.buf, b)

	if literal {
		return
	}

	switch t.state {
	case stateText:
		if b == '[' {
			t.startElement(idx)
		}

	case stateElement, stateElementParam, stateClosingElement:
		switch {
		case b == '[':
			// Abandon the current candidate: its bytes stay in the pending
			// text run and a new candidate begins here.
			t.startElement(idx)
		case b == ']':
			t.tryCloseElement(idx)
		case b == '/' && t.state == stateElement && idx == t.elemStart+1:
			t.state = stateClosingElement
		case b == '=' && t.state == stateElement:
			t.state = stateElementParam
			t.valueStart = idx + 1
		case b == ' ' && t.state == stateElement && !t.opts.RequireEquals:
			t.state = stateElementParam
			t.valueStart = idx + 1
		}
	}
}

// startElement begins a candidate element at the given '[' index.
func (t *tokenizer) startElement(idx int) {
	t.state = stateElement
	t.elemStart = idx
	t.valueStart = -1
}

// tryCloseElement validates the candidate slice ending at the ']' just
// appended at index end. An invalid slice does not close the element; the
// ']' stays in the accumulating content and scanning continues.
func (t *tokenizer) tryCloseElement(end int) {
	slice := t.buf[t.elemStart : end+1]
	if !t.isElementValid(slice) {
		return
	}

	closing := t.state == stateClosingElement
	name := elementName(slice)

	// Flush the pending text run up to the tag.
	if t.elemStart > t.textStart {
		t.emitText(t.textStart, t.elemStart)
	}

	nameStart := t.elemStart + 1
	if closing {
		nameStart++
	}

	tok := bbast.Token{
		Kind: bbast.TokOpen,
		Name: bbast.Span{Start: nameStart, End: nameStart + len(name)},
		Raw:  bbast.Span{Start: t.elemStart, End: end + 1},
	}
	switch {
	case closing:
		tok.Kind = bbast.TokClose
	case t.valueStart >= 0 && t.valueStart <= end:
		tok.Value = bbast.Span{Start: t.valueStart, End: end}
		tok.HasValue = true
	}
	t.tokens = append(t.tokens, tok)

	if closing {
		if t.verbatim == string(name) {
			t.verbatim = ""
		}
	} else if t.opts.isVerbatim(name) {
		// Only one verbatim tag is active at a time; same-name reopen is
		// a no-op.
		t.verbatim = string(name)
	}

	t.state = stateText
	t.textStart = end + 1
	t.valueStart = -1
}

// isElementValid applies the validity check to a bracketed candidate slice.
func (t *tokenizer) isElementValid(slice []byte) bool {
	// [] carries no name; anything shorter cannot be a tag.
	if len(slice) < 3 {
		return false
	}
	if t.verbatim != "" && string(elementName(slice)) != t.verbatim {
		return false
	}
	if t.opts.RequireEquals &&
		bytes.IndexByte(slice, ' ') >= 0 && bytes.IndexByte(slice, '=') < 0 {
		return false
	}
	return true
}

// elementName extracts the tag name from a bracketed slice: the leading '/'
// of a closing tag is stripped and the name ends at the first space or '='.
func elementName(slice []byte) []byte {
	inner := slice[1 : len(slice)-1]
	if len(inner) > 0 && inner[0] == '/' {
		inner = inner[1:]
	}
	for i, b := range inner {
		if b == ' ' || b == '=' {
			return inner[:i]
		}
	}
	return inner
}

// emitText emits a text token over [start, end).
func (t *tokenizer) emitText(start, end int) {
	span := bbast.Span{Start: start, End: end}
	t.tokens = append(t.tokens, bbast.Token{
		Kind: bbast.TokText,
		Name: span,
		Raw:  span,
	})
}

// finish flushes the pending text run, folding any unterminated candidate
// element back into ordinary text, then coalesces adjacent text tokens.
func (t *tokenizer) finish() {
	t.state = stateText
	if len(t.buf) > t.textStart {
		t.emitText(t.textStart, len(t.buf))
	}
	t.coalesce()
}

// coalesce merges runs of adjacent text tokens into one by extending the
// first token's spans to the last. Dropped escape backslashes never enter
// the buffer, so merged spans are always contiguous.
func (t *tokenizer) coalesce() {
	if len(t.tokens) < 2 {
		return
	}

	out := t.tokens[:1]
	for _, tok := range t.tokens[1:] {
		last := &out[len(out)-1]
		if tok.Kind == bbast.TokText && last.Kind == bbast.TokText {
			last.Name.End = tok.Name.End
			last.Raw.End = tok.Raw.End
			continue
		}
		out = append(out, tok)
	}
	t.tokens = out
}
