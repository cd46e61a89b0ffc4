package components

import (
	"strings"

	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}

// Bar renders a solid bar filled to pct of width.
func Bar(pct float64, color lipgloss.Color, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.Full = '█'
	bar.Empty = '░'
	bar.EmptyColor = string(theme.Active.Border)
	return bar.ViewAs(clamp01(pct))
}

// AutoAdvanceBar shows how far the current slide is through its interval.
func AutoAdvanceBar(pct float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Active.Electric)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.Full = '━'
	bar.Empty = '─'
	bar.EmptyColor = string(theme.Active.Border)
	return bar.ViewAs(clamp01(pct))
}

// SliderTrack renders a slider with a knob at frac of the track.
func SliderTrack(frac float64, width int) string {
	t := theme.Active
	width = max(width, 3)
	pos := int(clamp01(frac)*float64(width-1) + 0.5)

	filled := lipgloss.NewStyle().Foreground(t.Accent)
	knob := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	empty := lipgloss.NewStyle().Foreground(t.Border)

	return filled.Render(strings.Repeat("━", pos)) +
		knob.Render("●") +
		empty.Render(strings.Repeat("─", width-1-pos))
}
