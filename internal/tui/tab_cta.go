package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/switchride/internal/model"
	"github.com/theirongolddev/switchride/internal/tui/components"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCTA(cw int) string {
	t := theme.Active
	sec, _ := a.page.SectionFor(model.AnchorCTA)

	on := lipgloss.NewStyle().Background(t.Inverse)
	label := on.Foreground(t.InverseText).Faint(true).Render(sec.Label)
	heading := on.Foreground(t.InverseText).Bold(true).Render(sec.Heading)
	body := on.Foreground(t.InverseText).Render(sec.Body)
	button := lipgloss.NewStyle().
		Foreground(t.Inverse).
		Background(t.InverseText).
		Bold(true).
		Padding(0, 2).
		Render("enter  " + a.page.CTA.Label)

	var b strings.Builder
	b.WriteString(components.InverseCard(label+"\n\n"+heading+"\n"+body+"\n\n"+button, cw))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(
		fmt.Sprintf(" © %d %s", a.now().Year(), a.page.Footer)))
	return b.String()
}
