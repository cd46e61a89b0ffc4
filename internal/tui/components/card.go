// Package components provides reusable TUI widgets for the switchride page.
package components

import (
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// StatCard renders a headline figure with a label above and an optional
// footnote below. outerWidth is the total rendered width including border.
func StatCard(label, value, sub string, valueColor lipgloss.Color, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(valueColor).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	content := labelStyle.Render(label) + "\n" + valueStyle.Render(value)
	if sub != "" {
		content += "\n" + subStyle.Render(sub)
	}
	return cardStyle.Render(content)
}

// Stat is one entry of a StatCardRow.
type Stat struct {
	Label, Value, Sub string
	Color             lipgloss.Color
}

// StatCardRow renders stat cards side by side, summing to totalWidth.
// Cards stack vertically when each would be narrower than minCardWidth.
func StatCardRow(stats []Stat, totalWidth, minCardWidth int) string {
	if len(stats) == 0 {
		return ""
	}
	if totalWidth/len(stats) < minCardWidth {
		rendered := make([]string, len(stats))
		for i, s := range stats {
			rendered[i] = StatCard(s.Label, s.Value, s.Sub, s.Color, totalWidth)
		}
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}

	widths := LayoutRow(totalWidth, len(stats))
	rendered := make([]string, len(stats))
	for i, s := range stats {
		rendered[i] = StatCard(s.Label, s.Value, s.Sub, s.Color, widths[i])
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// InverseCard renders the high-contrast call-to-action block.
func InverseCard(body string, outerWidth int) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Background(t.Inverse).
		Foreground(t.InverseText).
		Width(max(outerWidth, 10)).
		Padding(1, 3).
		Render(body)
}

// CardRow joins pre-rendered cards horizontally, padding shorter cards so
// every column has the height of the tallest.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	h := 0
	for _, c := range cards {
		h = max(h, lipgloss.Height(c))
	}
	padded := make([]string, len(cards))
	for i, c := range cards {
		padded[i] = lipgloss.PlaceVertical(h, lipgloss.Top, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, padded...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}

// SectionHeader renders the label, heading and body that open a section.
func SectionHeader(label, heading, body string, width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	headingStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(max(width, 10))

	return labelStyle.Render(label) + "\n" +
		headingStyle.Render(heading) + "\n" +
		bodyStyle.Render(body)
}
