package bbast

// NodeKind classifies the type of a tree node.
type NodeKind uint8

const (
	// NodeDocument is the root node. Exactly one per tree, never a child.
	NodeDocument NodeKind = iota

	// NodeElement is a tag with an optional parameter and ordered children.
	NodeElement

	// NodeText is a run of content bytes. Text nodes have no children.
	NodeText
)

// String returns the node kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "document"
	case NodeElement:
		return "element"
	case NodeText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a single node in the BBCode document tree.
// Nodes form a tree with parent/child/sibling links; the parent owns its
// children and the parent pointer exists for traversal only. All text is
// held as spans into the owning Document's buffer.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Name is the tag name span for element nodes.
	Name Span

	// Value is the parameter span for element nodes; meaningful only when
	// HasValue is true.
	Value Span

	// HasValue reports whether the element carried a parameter.
	HasValue bool

	// Raw covers the element's original tag bytes, brackets included.
	Raw Span

	// Content is the content span for text nodes.
	Content Span

	// Doc is a back-reference to the owning Document. The tree borrows the
	// Document's buffer through its spans and must not outlive it.
	Doc *Document
}

// TagName resolves the element's tag name.
func (n *Node) TagName() []byte {
	if n.Doc == nil {
		return nil
	}
	return n.Name.Bytes(n.Doc.Buf)
}

// ParamValue resolves the element's parameter value, or nil when absent.
func (n *Node) ParamValue() []byte {
	if n.Doc == nil || !n.HasValue {
		return nil
	}
	return n.Value.Bytes(n.Doc.Buf)
}

// RawBytes resolves the element's original source bytes.
func (n *Node) RawBytes() []byte {
	if n.Doc == nil {
		return nil
	}
	return n.Raw.Bytes(n.Doc.Buf)
}

// TextBytes resolves a text node's content.
func (n *Node) TextBytes() []byte {
	if n.Doc == nil {
		return nil
	}
	return n.Content.Bytes(n.Doc.Buf)
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}
