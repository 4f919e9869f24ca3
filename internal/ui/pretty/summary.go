package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// defaultWidth is used when the terminal width cannot be determined.
const defaultWidth = 80

// Summary aggregates the outcome of a conversion run for display.
type Summary struct {
	// FilesConverted is the number of inputs successfully converted.
	FilesConverted int

	// BytesWritten is the total output size across all files.
	BytesWritten int64

	// UnknownTags counts tags passed through because no conversion rule
	// matched them.
	UnknownTags int
}

// RenderSummary writes a one-screen conversion summary to w.
func RenderSummary(w io.Writer, styles *Styles, summary Summary) error {
	width := terminalWidth(w)
	rule := styles.Dim.Render(strings.Repeat("─", min(width, defaultWidth)))

	status := styles.Success.Render("ok")
	if summary.UnknownTags > 0 {
		status = styles.Warning.Render(fmt.Sprintf("%d unknown tag(s)", summary.UnknownTags))
	}

	lines := []string{
		rule,
		fmt.Sprintf("%s %s",
			styles.SummaryTitle.Render("converted:"),
			styles.SummaryValue.Render(fmt.Sprintf("%d file(s), %d byte(s)",
				summary.FilesConverted, summary.BytesWritten))),
		fmt.Sprintf("%s %s", styles.SummaryTitle.Render("status:"), status),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}

// terminalWidth returns the writer's terminal width, or defaultWidth when
// the writer is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
