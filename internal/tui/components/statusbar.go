package components

import (
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: global keys, section hints, and the
// floating call to action on the right.
func RenderStatusBar(width int, hints, cta string) string {
	t := theme.Active

	left := lipgloss.NewStyle().Foreground(t.TextDim).Render(" [?]help  [q]uit")
	if hints != "" {
		left += lipgloss.NewStyle().Foreground(t.TextMuted).Render("   " + hints)
	}

	right := ""
	if cta != "" {
		right = lipgloss.NewStyle().
			Foreground(t.AccentText).
			Background(t.Accent).
			Bold(true).
			Render(" "+cta+" [b] ") + " "
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().MaxWidth(width).Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
