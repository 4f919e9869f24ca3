package bbast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/gobbmd/pkg/bbast"
)

// buildTestTree constructs:
//
//	document
//	├── element (b)
//	│   └── text
//	└── text
func buildTestTree() (*bbast.Node, *bbast.Node, *bbast.Node, *bbast.Node) {
	root := bbast.NewNode(bbast.NodeDocument)
	elem := bbast.NewNode(bbast.NodeElement)
	inner := bbast.NewNode(bbast.NodeText)
	trailing := bbast.NewNode(bbast.NodeText)

	bbast.AppendChild(root, elem)
	bbast.AppendChild(elem, inner)
	bbast.AppendChild(root, trailing)

	return root, elem, inner, trailing
}

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	root, elem, inner, trailing := buildTestTree()

	var visited []*bbast.Node
	err := bbast.Walk(root, func(n *bbast.Node) error {
		visited = append(visited, n)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []*bbast.Node{root, elem, inner, trailing}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit order mismatch at index %d", i)
		}
	}
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	root, elem, _, _ := buildTestTree()
	sentinel := errors.New("stop")

	count := 0
	err := bbast.Walk(root, func(n *bbast.Node) error {
		count++
		if n == elem {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}

	if count != 2 {
		t.Errorf("expected walk to stop after 2 visits, got %d", count)
	}
}

func TestWalkNilRoot(t *testing.T) {
	t.Parallel()

	if err := bbast.Walk(nil, func(*bbast.Node) error { return nil }); err != nil {
		t.Errorf("nil root should be a no-op, got %v", err)
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	root, _, inner, trailing := buildTestTree()

	texts := bbast.FindAll(root, func(n *bbast.Node) bool {
		return n.Kind == bbast.NodeText
	})

	if len(texts) != 2 || texts[0] != inner || texts[1] != trailing {
		t.Errorf("FindAll returned wrong nodes: %v", texts)
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	root, elem, _, _ := buildTestTree()

	found := bbast.FindFirst(root, func(n *bbast.Node) bool {
		return n.Kind == bbast.NodeElement
	})
	if found != elem {
		t.Error("FindFirst did not return the element node")
	}

	missing := bbast.FindFirst(root, func(n *bbast.Node) bool { return false })
	if missing != nil {
		t.Error("FindFirst with no match should return nil")
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	root, _, _, _ := buildTestTree()

	if got := bbast.FindByKind(root, bbast.NodeText); len(got) != 2 {
		t.Errorf("expected 2 text nodes, got %d", len(got))
	}

	if got := bbast.FindByKind(root, bbast.NodeDocument); len(got) != 1 {
		t.Errorf("expected 1 document node, got %d", len(got))
	}
}
