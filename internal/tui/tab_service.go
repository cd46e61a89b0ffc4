package tui

import (
	"strings"

	"github.com/theirongolddev/switchride/internal/model"
	"github.com/theirongolddev/switchride/internal/tui/components"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderService(cw int) string {
	t := theme.Active
	sec, _ := a.page.SectionFor(model.AnchorService)

	cols := 3
	if a.isCompactLayout() {
		cols = 2
	}

	tagStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceHover).Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	b.WriteString(components.SectionHeader(sec.Label, sec.Heading, sec.Body, cw))
	b.WriteString("\n\n")

	widths := components.LayoutRow(cw, cols)
	for start := 0; start < len(a.page.Services); start += cols {
		end := min(start+cols, len(a.page.Services))
		row := make([]string, 0, cols)
		for i, item := range a.page.Services[start:end] {
			descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(components.CardInnerWidth(widths[i]))
			body := tagStyle.Render(item.Tag) + "\n\n" +
				titleStyle.Render(item.Title) + "\n" +
				descStyle.Render(item.Desc)
			row = append(row, components.ContentCard("", body, widths[i]))
		}
		b.WriteString(components.CardRow(row))
		b.WriteString("\n")
	}
	return b.String()
}
