package markdown

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/render"
)

// renderList performs the dedicated list walk. List items carry no close
// tag, so the builder may leave them flat or nested depending on the input;
// the walk linearizes either shape: every list-item encountered in pre-order
// gets the next number, and every text node is appended verbatim with a
// guaranteed trailing newline.
func renderList(rc *render.Context, list *bbast.Node) error {
	count := 0

	var walk func(n *bbast.Node) error
	walk = func(n *bbast.Node) error {
		for child := n.FirstChild; child != nil; child = child.Next {
			switch {
			case child.Kind == bbast.NodeText:
				text := child.TextBytes()
				if _, err := rc.W.Write(text); err != nil {
					return err
				}
				if !bytes.HasSuffix(text, []byte("\n")) {
					if err := rc.W.WriteByte('\n'); err != nil {
						return err
					}
				}
			case child.Kind == bbast.NodeElement &&
				bbast.Classify(child.TagName()) == bbast.ElemListItem:
				count++
				if _, err := fmt.Fprintf(rc.W, "%d. ", count); err != nil {
					return err
				}
				if err := walk(child); err != nil {
					return err
				}
			default:
				if err := walk(child); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := walk(list); err != nil {
		return err
	}
	return rc.W.Flush()
}
