package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter renders the summary inside a lipgloss box with a footer
// showing how many paths were classified and skipped.
type PrettyFormatter struct {
	// NoColor disables foreground colors and bold text; the border is kept.
	NoColor bool
}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	th := newTheme(!f.NoColor)
	lines := r.Lines()

	countWidth := 1
	for _, p := range lines {
		if n := len(humanize.Comma(int64(p.Count))); n > countWidth {
			countWidth = n
		}
	}

	var sb strings.Builder
	sb.WriteString(th.title.Render("File types"))
	sb.WriteString("\n")

	for _, p := range lines {
		label := th.label.Render(fmt.Sprintf("%-*s", labelWidth, p.Category.Label()+":"))
		countStr := padLeft(humanize.Comma(int64(p.Count)), countWidth)
		if p.Count == 0 {
			countStr = th.zero.Render(countStr)
		} else {
			countStr = th.count.Render(countStr)
		}
		sb.WriteString(label + countStr + "\n")
	}

	sb.WriteString(f.formatFooter(th, r))

	w.WriteString(th.box.Render(sb.String()))
	w.WriteString("\n")
	return nil
}

// formatFooter builds the classified/skipped/elapsed line.
func (f *PrettyFormatter) formatFooter(th theme, r *Result) string {
	parts := []string{
		fmt.Sprintf("%s classified", humanize.Comma(int64(r.Classified()))),
	}

	skipped := fmt.Sprintf("%s skipped", humanize.Comma(int64(r.Skipped)))
	if r.Skipped > 0 {
		skipped = th.warning.Render(skipped)
	}
	parts = append(parts, skipped)

	if r.Elapsed > 0 {
		parts = append(parts, "in "+formatDuration(r.Elapsed))
	}

	return th.footer.Render(strings.Join(parts, " · "))
}

// formatDuration renders d in seconds with an SI prefix, e.g. "1.5 ms".
func formatDuration(d time.Duration) string {
	return humanize.SIWithDigits(d.Seconds(), 1, "s")
}

// padLeft pads s with spaces on the left to reach width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
