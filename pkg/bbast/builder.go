package bbast

// NewNode creates a new node of the specified kind with no parent, children,
// or document association.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AppendChild appends a child node to a parent, maintaining the
// parent/child/sibling links.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent and clears its sibling links.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// SetDocument sets the document back-reference for a node and all its
// descendants.
func SetDocument(node *Node, doc *Document) {
	if node == nil {
		return
	}

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(node, func(child *Node) error {
		child.Doc = doc
		return nil
	})
}
