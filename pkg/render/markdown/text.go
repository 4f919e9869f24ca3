package markdown

import (
	"github.com/yaklabco/gobbmd/pkg/render"
)

// writeText applies the text write rule: every line break is doubled to
// force a paragraph break in the target markup, then tabs are expanded when
// a tab width is configured. The sink is flushed after each text node to
// bound buffering latency.
func writeText(rc *render.Context, text []byte) error {
	out := make([]byte, 0, len(text)+len(text)/4)

	for _, b := range text {
		switch {
		case b == '\n':
			out = append(out, '\n', '\n')
		case b == '\t' && rc.TabWidth > 0:
			for i := 0; i < rc.TabWidth; i++ {
				out = append(out, ' ')
			}
		default:
			out = append(out, b)
		}
	}

	if _, err := rc.W.Write(out); err != nil {
		return err
	}
	return rc.W.Flush()
}
