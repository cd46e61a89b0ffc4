package tui

import (
	"strings"

	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/tui/components"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) heroKey(key string) bool {
	switch key {
	case "left":
		a.carousel.Previous()
	case "right":
		a.carousel.Next()
	case "enter":
		a.followTarget(a.carousel.Current().Primary)
		return true
	case "o":
		a.followTarget(a.carousel.Current().Secondary)
		return true
	default:
		if len(key) != 1 || key[0] < '1' || key[0] > '9' {
			return false
		}
		if err := a.carousel.GoTo(int(key[0] - '1')); err != nil {
			return true // no such slide; swallow the key
		}
	}
	a.sched.Navigated(a.now())
	return true
}

func (a App) renderHero(cw int) string {
	t := theme.Active
	slide := a.carousel.Current()
	now := a.now()

	eyebrowStyle := lipgloss.NewStyle().Foreground(t.Electric)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(components.CardInnerWidth(cw))
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(components.Pills(a.page.HeroPills))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(eyebrowStyle.Render(slide.Eyebrow))
	card.WriteString("\n\n")
	card.WriteString(titleStyle.Render(slide.Title) + " " + accentStyle.Render(slide.Accent))
	card.WriteString("\n")
	card.WriteString(subStyle.Render(slide.Subtitle))
	card.WriteString("\n")
	card.WriteString(dimStyle.Render("▣ " + slide.Image))
	card.WriteString("\n\n")
	card.WriteString(components.KeyHint("enter", slide.Primary.Label))
	card.WriteString("   ")
	card.WriteString(components.KeyHint("o", slide.Secondary.Label))
	b.WriteString(components.ContentCard("", card.String(), cw))
	b.WriteString("\n")

	// Indicator row: dots, position, auto-advance progress, countdown.
	left := " " + components.Dots(a.carousel.Len(), a.carousel.Index()) +
		dimStyle.Render("  "+slideCounter(a.carousel.Index(), a.carousel.Len()))
	right := dimStyle.Render(" next in "+cli.FormatCountdown(a.sched.Remaining(now))) + " "
	live := ""
	if a.sched.Running() {
		live = a.spinner.View() + " "
	}
	barW := max(cw-lipgloss.Width(left)-lipgloss.Width(right)-lipgloss.Width(live)-2, 8)
	b.WriteString(left + "  " + live + components.AutoAdvanceBar(a.sched.Progress(now), barW) + right)
	b.WriteString("\n\n")

	stats := make([]components.Stat, len(a.page.Stats))
	for i, s := range a.page.Stats {
		stats[i] = components.Stat{Label: s.Label, Value: s.Value, Sub: s.Sub, Color: t.TextPrimary}
	}
	b.WriteString(components.StatCardRow(stats, cw, minStatCardWidth))
	b.WriteString("\n\n")

	b.WriteString(components.Pills(a.page.SocialProof))
	b.WriteString("\n\n")
	b.WriteString(components.Avatars(a.page.Riders, a.page.Rating))

	return b.String()
}

func slideCounter(i, n int) string {
	return cli.FormatIndian(int64(i+1)) + "/" + cli.FormatIndian(int64(n))
}
