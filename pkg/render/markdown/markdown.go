// Package markdown renders a BBCode document tree to Markdown.
package markdown

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gobbmd/internal/logging"
	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/render"
)

// Options controls a Markdown render pass.
type Options struct {
	// TabWidth expands tabs in text content to this many spaces (0-255).
	// Zero disables expansion.
	TabWidth int

	// Override is the optional per-node hook.
	Override render.Override

	// UserData is an opaque payload passed through to the hook.
	UserData any

	// Logger receives unsupported-tag warnings. When nil, the logger
	// attached to the render context is used, falling back to the package
	// default.
	Logger *log.Logger
}

// Renderer is the Markdown backend.
type Renderer struct {
	opts Options
}

// New creates a Markdown renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, doc *bbast.Document, w io.Writer) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("render: %w", ctx.Err())
	default:
	}

	logger := r.opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	rc := &render.Context{
		W:        bufio.NewWriter(w),
		Doc:      doc,
		Override: r.opts.Override,
		UserData: r.opts.UserData,
		TabWidth: r.opts.TabWidth,
		Logger:   logger,
	}

	if err := renderNode(rc, doc.Root); err != nil {
		return err
	}

	if err := rc.W.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// renderNode dispatches one node: the override hook first, then the
// built-in handling for its variant.
func renderNode(rc *render.Context, n *bbast.Node) error {
	if rc.Override != nil {
		handled, err := rc.Override(rc, n)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	switch n.Kind {
	case bbast.NodeDocument:
		return renderChildren(rc, n)
	case bbast.NodeText:
		return writeText(rc, n.TextBytes())
	case bbast.NodeElement:
		return renderElement(rc, n)
	default:
		return nil
	}
}

// renderChildren renders a node's children in order.
func renderChildren(rc *render.Context, n *bbast.Node) error {
	for child := n.FirstChild; child != nil; child = child.Next {
		if err := renderNode(rc, child); err != nil {
			return err
		}
	}
	return nil
}

// renderElement applies the built-in conversion rule for the element's
// classified kind.
func renderElement(rc *render.Context, n *bbast.Node) error {
	switch bbast.Classify(n.TagName()) {
	case bbast.ElemBold:
		return wrap(rc, n, "**")
	case bbast.ElemItalic:
		return wrap(rc, n, "*")
	case bbast.ElemUnderline:
		// Markdown has no native underline; render the content bare.
		return renderChildren(rc, n)
	case bbast.ElemCode:
		return renderCode(rc, n)
	case bbast.ElemBlockquote:
		if _, err := rc.W.WriteString("> "); err != nil {
			return err
		}
		return renderChildren(rc, n)
	case bbast.ElemRule:
		_, err := rc.W.WriteString("---\n")
		return err
	case bbast.ElemLink:
		return renderLink(rc, n, "")
	case bbast.ElemEmail:
		return renderLink(rc, n, "mailto:")
	case bbast.ElemList:
		return renderList(rc, n)
	case bbast.ElemListItem:
		// Decoration is added by the enclosing list walk.
		return renderChildren(rc, n)
	default:
		return renderUnrecognized(rc, n)
	}
}

// wrap surrounds the recursively-rendered children with marker.
func wrap(rc *render.Context, n *bbast.Node, marker string) error {
	if _, err := rc.W.WriteString(marker); err != nil {
		return err
	}
	if err := renderChildren(rc, n); err != nil {
		return err
	}
	_, err := rc.W.WriteString(marker)
	return err
}

// renderLink emits [label](target). With a parameter the target is the
// parameter value and the label is the concatenated descendant text;
// without one the element's own text serves as both.
func renderLink(rc *render.Context, n *bbast.Node, targetPrefix string) error {
	label := collectText(n)

	target := label
	if n.HasValue {
		target = n.ParamValue()
	}

	if _, err := fmt.Fprintf(rc.W, "[%s](%s%s)", label, targetPrefix, target); err != nil {
		return err
	}
	return nil
}

// collectText concatenates every descendant text node in document order.
func collectText(n *bbast.Node) []byte {
	var out []byte
	for _, textNode := range bbast.FindByKind(n, bbast.NodeText) {
		out = append(out, textNode.TextBytes()...)
	}
	return out
}

// renderUnrecognized passes the original tag bytes through unmodified,
// renders the children, and emits a non-fatal diagnostic.
func renderUnrecognized(rc *render.Context, n *bbast.Node) error {
	rc.Logger.Warn("unsupported tag", logging.FieldTag, string(n.TagName()))

	if _, err := rc.W.Write(n.RawBytes()); err != nil {
		return err
	}
	return renderChildren(rc, n)
}
