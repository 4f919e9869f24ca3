// Package html renders a BBCode document tree to HTML.
//
// The backend reuses the Markdown conversion rules and pipes the result
// through goldmark, so both backends stay behaviorally aligned: anything the
// Markdown backend learns to express, the HTML backend expresses for free.
package html

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/yuin/goldmark"

	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/render/markdown"
)

// Renderer is the HTML backend.
type Renderer struct {
	md *markdown.Renderer
	gm goldmark.Markdown
}

// New creates an HTML renderer. The options apply to the underlying
// Markdown pass, override hook included.
func New(opts markdown.Options) *Renderer {
	return &Renderer{
		md: markdown.New(opts),
		gm: goldmark.New(),
	}
}

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, doc *bbast.Document, w io.Writer) error {
	var buf bytes.Buffer
	if err := r.md.Render(ctx, doc, &buf); err != nil {
		return err
	}

	if err := r.gm.Convert(buf.Bytes(), w); err != nil {
		return fmt.Errorf("convert markdown to html: %w", err)
	}
	return nil
}
