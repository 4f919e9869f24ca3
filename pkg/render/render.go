// Package render defines the backend-independent rendering contract for
// gobbmd. Backends walk the document tree in source order and write to a
// sink; callers can intercept any node through an override hook carried on
// the render context.
package render

import (
	"bufio"
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gobbmd/pkg/bbast"
)

// Renderer converts a parsed document to an output markup language.
// Renderers only read the tree and buffer; no node is mutated.
type Renderer interface {
	// Render walks doc in document order and writes the conversion to w.
	Render(ctx context.Context, doc *bbast.Document, w io.Writer) error
}

// Override is consulted before default handling of each visited node. It
// runs synchronously, inline with the traversal, and may write to the sink.
// Returning handled=true skips default handling entirely, children
// included; the callback is then responsible for them.
type Override func(rc *Context, n *bbast.Node) (handled bool, err error)

// Context bundles everything one render pass needs: the buffered sink, the
// originating document for raw-span lookups, the extension points, and the
// resolved output options.
type Context struct {
	// W is the output sink. Backends flush it after each text node to
	// bound buffering latency.
	W *bufio.Writer

	// Doc is the document being rendered.
	Doc *bbast.Document

	// Override is the optional per-node hook; nil disables interception.
	Override Override

	// UserData is an opaque caller payload passed through to the hook.
	UserData any

	// TabWidth expands tabs in text content to this many spaces.
	// Zero leaves tabs untouched.
	TabWidth int

	// Logger receives non-fatal diagnostics such as unsupported tags.
	Logger *log.Logger
}
