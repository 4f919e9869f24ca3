package markdown

import (
	"bytes"

	"github.com/yaklabco/gobbmd/pkg/bbast"
	"github.com/yaklabco/gobbmd/pkg/langdetect"
	"github.com/yaklabco/gobbmd/pkg/render"
)

// renderCode converts a [code] element. Single-line content becomes inline
// backticks; multi-line content becomes a fenced block, since inline code
// cannot span lines in Markdown. The fence info string comes from the tag
// parameter when present ([code=go]) and from content detection otherwise.
func renderCode(rc *render.Context, n *bbast.Node) error {
	content := collectText(n)

	if !bytes.ContainsRune(content, '\n') {
		if err := rc.W.WriteByte('`'); err != nil {
			return err
		}
		if _, err := rc.W.Write(content); err != nil {
			return err
		}
		return rc.W.WriteByte('`')
	}

	lang := ""
	if n.HasValue {
		lang = string(n.ParamValue())
	} else {
		lang = langdetect.Detect(content)
	}

	if _, err := rc.W.WriteString("```" + lang + "\n"); err != nil {
		return err
	}
	if _, err := rc.W.Write(bytes.TrimPrefix(content, []byte("\n"))); err != nil {
		return err
	}
	if !bytes.HasSuffix(content, []byte("\n")) {
		if err := rc.W.WriteByte('\n'); err != nil {
			return err
		}
	}
	_, err := rc.W.WriteString("```\n")
	return err
}
