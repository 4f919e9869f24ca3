package bbcode

import (
	"bytes"
	"io"

	"github.com/yaklabco/gobbmd/pkg/bbast"
)

// Parse tokenizes the byte source and builds the document tree. It fails
// only on a source read error.
func Parse(r io.Reader, opts Options) (*bbast.Document, error) {
	buf, tokens, err := Tokenize(r, opts)
	if err != nil {
		return nil, err
	}

	doc := bbast.NewDocument("", buf)
	doc.Tokens = tokens
	doc.Root = buildTree(doc)
	return doc, nil
}

// ParseBytes parses in-memory content. It cannot fail: malformed markup
// degrades to text and there is no I/O.
func ParseBytes(src []byte, opts Options) *bbast.Document {
	doc, _ := Parse(bytes.NewReader(src), opts)
	return doc
}

// buildTree consumes the document's token stream and constructs the node
// tree. A stack of open elements is rooted at the document node; close
// tokens pop only on a byte-exact name match, and anything still open at
// end of input is implicitly closed there.
func buildTree(doc *bbast.Document) *bbast.Node {
	root := bbast.NewNode(bbast.NodeDocument)
	root.Doc = doc

	stack := []*bbast.Node{root}

	for _, tok := range doc.Tokens {
		top := stack[len(stack)-1]

		switch tok.Kind {
		case bbast.TokText:
			n := bbast.NewNode(bbast.NodeText)
			n.Doc = doc
			n.Content = tok.Name
			n.Raw = tok.Raw
			bbast.AppendChild(top, n)

		case bbast.TokOpen:
			n := bbast.NewNode(bbast.NodeElement)
			n.Doc = doc
			n.Name = tok.Name
			n.Value = tok.Value
			n.HasValue = tok.HasValue
			n.Raw = tok.Raw
			bbast.AppendChild(top, n)

			// Implicit-close kinds ([*]) have no matching close token and
			// never open a nesting level.
			if !bbast.Classify(n.TagName()).IsImplicitClose() {
				stack = append(stack, n)
			}

		case bbast.TokClose:
			// Mismatched close tags are inert; they never corrupt the tree.
			if len(stack) > 1 && bytes.Equal(top.TagName(), tok.Name.Bytes(doc.Buf)) {
				stack = stack[:len(stack)-1]
			}
		}
	}

	return root
}
