package markdown_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gobbmd/internal/logging"
	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/parser/bbcode"
	"github.com/yaklabco/gobbmd/pkg/render"
	"github.com/yaklabco/gobbmd/pkg/render/markdown"
)

// renderString parses input and renders it with the given options.
func renderString(t *testing.T, input string, opts markdown.Options) string {
	t.Helper()

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	doc := bbcode.ParseBytes([]byte(input), bbcode.DefaultOptions())

	var buf bytes.Buffer
	if err := markdown.New(opts).Render(context.Background(), doc, &buf); err != nil {
		t.Fatalf("Render(%q) failed: %v", input, err)
	}
	return buf.String()
}

func TestRenderConversionRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "[b]Hello, World![/b]", "**Hello, World!**"},
		{"italic", "[i]emphasis[/i]", "*emphasis*"},
		{"underline renders bare", "[u]plain[/u]", "plain"},
		{"blockquote", "[quote]wise words[/quote]", "> wise words"},
		{"horizontal rule", "[hr]", "---\n"},
		{"link with parameter", "[url=https://example.com]Link[/url]", "[Link](https://example.com)"},
		{"link without parameter", "[url]https://example.com[/url]",
			"[https://example.com](https://example.com)"},
		{"email", "[email]dev@example.com[/email]", "[dev@example.com](mailto:dev@example.com)"},
		{"nested", "[quote][b]x[/b][/quote]", "> **x**"},
		{"plain text untouched", "nothing to convert", "nothing to convert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := renderString(t, tt.input, markdown.Options{}); got != tt.want {
				t.Errorf("render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	t.Parallel()

	got := renderString(t, "[list][*]one[*]two[*]three[/list]", markdown.Options{})
	want := "1. one\n2. two\n3. three\n"
	if got != want {
		t.Errorf("list render = %q, want %q", got, want)
	}
}

func TestRenderUnknownTagPassthrough(t *testing.T) {
	t.Parallel()

	got := renderString(t, "[size=3]big[/size]", markdown.Options{})
	if got != "[size=3]big" {
		t.Errorf("unknown tag render = %q", got)
	}
}

func TestRenderUnterminatedTagAsText(t *testing.T) {
	t.Parallel()

	input := "[b unclosed tag"
	if got := renderString(t, input, markdown.Options{}); got != input {
		t.Errorf("render = %q, want the exact original text", got)
	}
}

func TestRenderNewlineDoubling(t *testing.T) {
	t.Parallel()

	got := renderString(t, "first\nsecond", markdown.Options{})
	if got != "first\n\nsecond" {
		t.Errorf("render = %q", got)
	}
}

func TestRenderTabExpansion(t *testing.T) {
	t.Parallel()

	if got := renderString(t, "a\tb", markdown.Options{TabWidth: 4}); got != "a    b" {
		t.Errorf("tab width 4: render = %q", got)
	}

	// Zero width leaves tabs alone.
	if got := renderString(t, "a\tb", markdown.Options{}); got != "a\tb" {
		t.Errorf("tab width 0: render = %q", got)
	}
}

func TestRenderInlineCode(t *testing.T) {
	t.Parallel()

	got := renderString(t, "[code]x := 1[/code]", markdown.Options{})
	if got != "`x := 1`" {
		t.Errorf("render = %q", got)
	}
}

func TestRenderFencedCodeWithLanguageParameter(t *testing.T) {
	t.Parallel()

	got := renderString(t, "[code=go]\nfunc main() {}\n[/code]", markdown.Options{})
	want := "```go\nfunc main() {}\n```\n"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderFencedCodeDetectsLanguage(t *testing.T) {
	t.Parallel()

	got := renderString(t, "[code]package main\n\nfunc main() {}[/code]", markdown.Options{})
	want := "```go\npackage main\n\nfunc main() {}\n```\n"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderOverrideHandlesNode(t *testing.T) {
	t.Parallel()

	override := func(rc *render.Context, n *bbast.Node) (bool, error) {
		if n.Kind == bbast.NodeElement && bbast.Classify(n.TagName()) == bbast.ElemBold {
			_, err := rc.W.WriteString("<<custom>>")
			return true, err
		}
		return false, nil
	}

	got := renderString(t, "a [b]x[/b] z", markdown.Options{Override: override})
	if got != "a <<custom>> z" {
		t.Errorf("render = %q", got)
	}
}

func TestRenderOverrideUserData(t *testing.T) {
	t.Parallel()

	seen := 0
	override := func(rc *render.Context, n *bbast.Node) (bool, error) {
		if counter, ok := rc.UserData.(*int); ok && n.Kind == bbast.NodeElement {
			*counter++
		}
		return false, nil
	}

	got := renderString(t, "[b]x[/b][i]y[/i]", markdown.Options{
		Override: override,
		UserData: &seen,
	})
	if got != "**x***y*" {
		t.Errorf("render = %q", got)
	}
	if seen != 2 {
		t.Errorf("override saw %d elements, want 2", seen)
	}
}

func TestRenderLoggerFromContext(t *testing.T) {
	t.Parallel()

	var ctxLog bytes.Buffer
	ctx := logging.WithLogger(context.Background(), log.New(&ctxLog))

	doc := bbcode.ParseBytes([]byte("[size=3]big[/size]"), bbcode.DefaultOptions())

	// With no logger configured, warnings go to the context's logger.
	var out bytes.Buffer
	if err := markdown.New(markdown.Options{}).Render(ctx, doc, &out); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(ctxLog.String(), "unsupported tag") {
		t.Errorf("context logger saw no warning, log output = %q", ctxLog.String())
	}

	// An explicitly configured logger wins over the context's.
	ctxLog.Reset()
	out.Reset()
	var explicit bytes.Buffer
	opts := markdown.Options{Logger: log.New(&explicit)}
	if err := markdown.New(opts).Render(ctx, doc, &out); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if ctxLog.Len() != 0 {
		t.Errorf("context logger received output despite an explicit logger: %q", ctxLog.String())
	}
	if !strings.Contains(explicit.String(), "unsupported tag") {
		t.Errorf("explicit logger saw no warning, log output = %q", explicit.String())
	}
}

func TestRenderCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := bbcode.ParseBytes([]byte("[b]x[/b]"), bbcode.DefaultOptions())

	var buf bytes.Buffer
	err := markdown.New(markdown.Options{Logger: log.New(io.Discard)}).Render(ctx, doc, &buf)
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
}

func TestRenderIdempotentRoundTrip(t *testing.T) {
	t.Parallel()

	first := renderString(t, "[b]Hello, World![/b]", markdown.Options{})

	// The Markdown output contains no BBCode syntax, so a second
	// tokenize/render pass is a no-op.
	second := renderString(t, first, markdown.Options{})
	if second != first {
		t.Errorf("round trip changed output: %q -> %q", first, second)
	}
}
