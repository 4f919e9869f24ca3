package bbcode_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/parser/bbcode"
)

func parse(t *testing.T, input string) *bbast.Document {
	t.Helper()

	doc, err := bbcode.Parse(strings.NewReader(input), bbcode.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return doc
}

func TestParseTreeShape(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[b]Hello[/b] world")

	root := doc.Root
	if root.Kind != bbast.NodeDocument {
		t.Fatalf("root kind = %s", root.Kind)
	}
	if root.Parent != nil {
		t.Error("root must not have a parent")
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 root children, got %d", len(children))
	}

	bold := children[0]
	if bold.Kind != bbast.NodeElement || string(bold.TagName()) != "b" {
		t.Errorf("first child should be [b] element, got %s %q", bold.Kind, bold.TagName())
	}
	if bold.ChildCount() != 1 || string(bold.FirstChild.TextBytes()) != "Hello" {
		t.Errorf("bold content wrong: %q", bold.FirstChild.TextBytes())
	}

	trailing := children[1]
	if trailing.Kind != bbast.NodeText || string(trailing.TextBytes()) != " world" {
		t.Errorf("trailing text wrong: %q", trailing.TextBytes())
	}
}

func TestParseNestedElements(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[quote][b]x[/b][/quote]")

	quote := doc.Root.FirstChild
	if string(quote.TagName()) != "quote" {
		t.Fatalf("outer tag = %q", quote.TagName())
	}

	bold := quote.FirstChild
	if bold == nil || string(bold.TagName()) != "b" {
		t.Fatalf("inner tag missing or wrong")
	}

	if bold.Parent != quote {
		t.Error("parent back-reference broken")
	}
}

func TestParseMismatchedCloseIsInert(t *testing.T) {
	t.Parallel()

	// [/i] matches nothing; it is dropped without corrupting the tree and
	// [b] stays open until end of input.
	doc := parse(t, "[b]x[/i]y")

	children := doc.Root.Children()
	if len(children) != 1 {
		t.Fatalf("expected 1 root child, got %d", len(children))
	}

	bold := children[0]
	if string(bold.TagName()) != "b" {
		t.Fatalf("tag = %q", bold.TagName())
	}

	// Both text runs end up inside the still-open [b].
	texts := bbast.FindByKind(bold, bbast.NodeText)
	if len(texts) != 2 {
		t.Fatalf("expected 2 text nodes under [b], got %d", len(texts))
	}
	if string(texts[0].TextBytes()) != "x" || string(texts[1].TextBytes()) != "y" {
		t.Errorf("text content wrong: %q, %q", texts[0].TextBytes(), texts[1].TextBytes())
	}
}

func TestParseImplicitCloseAtEOF(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[quote]never closed")

	quote := doc.Root.FirstChild
	if quote == nil || string(quote.TagName()) != "quote" {
		t.Fatal("open element missing")
	}

	if string(quote.FirstChild.TextBytes()) != "never closed" {
		t.Errorf("content = %q", quote.FirstChild.TextBytes())
	}
}

func TestParseListItemsStayFlat(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[list][*]one[*]two[*]three[/list]")

	list := doc.Root.FirstChild
	if list == nil || string(list.TagName()) != "list" {
		t.Fatal("list element missing")
	}

	// [*] never opens a nesting level, so items and their trailing text are
	// interleaved siblings under the list.
	children := list.Children()
	if len(children) != 6 {
		t.Fatalf("expected 6 list children, got %d", len(children))
	}

	wantTags := []string{"*", "", "*", "", "*", ""}
	wantText := []string{"", "one", "", "two", "", "three"}
	for i, child := range children {
		if wantTags[i] != "" {
			if child.Kind != bbast.NodeElement || string(child.TagName()) != wantTags[i] {
				t.Errorf("child %d: expected [*] element", i)
			}
		} else if child.Kind != bbast.NodeText || string(child.TextBytes()) != wantText[i] {
			t.Errorf("child %d: text = %q, want %q", i, child.TextBytes(), wantText[i])
		}
	}
}

func TestParseElementParameter(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[url=https://example.com]Link[/url]")

	url := doc.Root.FirstChild
	if !url.HasValue {
		t.Fatal("parameter missing")
	}
	if string(url.ParamValue()) != "https://example.com" {
		t.Errorf("value = %q", url.ParamValue())
	}
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	doc := bbcode.ParseBytes([]byte("[i]x[/i]"), bbcode.DefaultOptions())
	if doc == nil || doc.Root == nil {
		t.Fatal("ParseBytes returned no document")
	}

	if string(doc.Root.FirstChild.TagName()) != "i" {
		t.Errorf("tag = %q", doc.Root.FirstChild.TagName())
	}
}

func TestParseDocumentBackReferences(t *testing.T) {
	t.Parallel()

	doc := parse(t, "[b]x[/b]")

	err := bbast.Walk(doc.Root, func(n *bbast.Node) error {
		if n.Doc != doc {
			t.Errorf("node %s missing document back-reference", n.Kind)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
}
