package components

import (
	"strings"

	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Pills renders short labels as rounded chips on one line.
func Pills(items []string) string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.SurfaceHover).
		Padding(0, 1)

	out := make([]string, len(items))
	for i, it := range items {
		out[i] = style.Render(it)
	}
	return strings.Join(out, " ")
}

// Segmented renders a row of options with the active one highlighted.
// Option i is labelled with its 1-based shortcut when numbered is set.
func Segmented(options []string, active int, numbered bool) string {
	t := theme.Active
	on := lipgloss.NewStyle().Foreground(t.AccentText).Background(t.Accent).Bold(true).Padding(0, 1)
	off := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceHover).Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	out := make([]string, len(options))
	for i, o := range options {
		var label string
		if i == active {
			label = on.Render(o)
		} else {
			label = off.Render(o)
		}
		if numbered {
			label = dim.Render(string(rune('1'+i))+" ") + label
		}
		out[i] = label
	}
	return strings.Join(out, " ")
}

// Dots renders the carousel position indicator.
func Dots(n, active int) string {
	t := theme.Active
	on := lipgloss.NewStyle().Foreground(t.Accent)
	off := lipgloss.NewStyle().Foreground(t.TextDim)

	out := make([]string, n)
	for i := range out {
		if i == active {
			out[i] = on.Render("●")
		} else {
			out[i] = off.Render("○")
		}
	}
	return strings.Join(out, " ")
}

// Avatars renders the rider initials row followed by the rating line.
func Avatars(initials []string, rating string) string {
	t := theme.Active
	light := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dark := lipgloss.NewStyle().Foreground(t.InverseText).Background(t.Inverse).Bold(true)

	var b strings.Builder
	for i, s := range initials {
		if i%2 == 0 {
			b.WriteString(light.Render(" " + s + " "))
		} else {
			b.WriteString(dark.Render(" " + s + " "))
		}
	}
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(rating))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(" average rider satisfaction"))
	return b.String()
}

// KeyHint renders "[key] label".
func KeyHint(key, label string) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextDim).Render("["+key+"] ") +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(label)
}
