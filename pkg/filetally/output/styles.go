package output

import "github.com/charmbracelet/lipgloss"

// Color constants using ANSI 256-color palette.
const (
	// ColorPrimary is used for headers and counts (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorWarning is used for skipped paths (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorMuted is used for labels and zero counts (gray).
	ColorMuted = lipgloss.Color("245")
)

// theme groups the styles used by PrettyFormatter.
type theme struct {
	box     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	count   lipgloss.Style
	zero    lipgloss.Style
	footer  lipgloss.Style
	warning lipgloss.Style
}

// newTheme returns the colored theme, or a border-only theme when color is false.
func newTheme(color bool) theme {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if !color {
		plain := lipgloss.NewStyle()
		return theme{
			box:     box,
			title:   plain,
			label:   plain,
			count:   plain,
			zero:    plain,
			footer:  plain,
			warning: plain,
		}
	}

	return theme{
		box: box.BorderForeground(ColorPrimary),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		label: lipgloss.NewStyle().
			Foreground(ColorMuted),
		count: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		zero: lipgloss.NewStyle().
			Foreground(ColorMuted),
		footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
	}
}
