package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/model"
	"github.com/theirongolddev/switchride/internal/tui/components"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) savingsKey(key string) bool {
	switch key {
	case "left":
		a.monthlyKm = a.slider.Move(a.monthlyKm, -1)
	case "right":
		a.monthlyKm = a.slider.Move(a.monthlyKm, 1)
	case "home":
		a.monthlyKm = a.slider.Min
	case "end":
		a.monthlyKm = a.slider.Snap(a.slider.Max)
	case "m":
		a.period = model.Monthly
	case "y":
		a.period = model.Yearly
	case "p":
		a.period = a.period.Toggle()
	default:
		return false
	}
	return true
}

func (a App) renderSavings(cw int) string {
	t := theme.Active
	sec, _ := a.page.SectionFor(model.AnchorSavings)
	rates := a.cfg.Rates
	sym := rates.Symbol()
	cost := calc.ComputeCost(a.monthlyKm, rates)
	pair := cost.For(a.period)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	bigStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(components.SectionHeader(sec.Label, sec.Heading, sec.Body, cw))
	b.WriteString("\n\n")

	// Calculator: distance on the left, yearly savings on the right.
	inner := components.CardInnerWidth(cw)
	left := labelStyle.Render("Monthly distance") + "\n" + bigStyle.Render(cli.FormatKm(a.monthlyKm))
	right := lipgloss.NewStyle().Align(lipgloss.Right).Render(
		labelStyle.Render("Savings / year") + "\n" +
			lipgloss.NewStyle().Foreground(t.Electric).Bold(true).Render(cli.FormatMoney(sym, cost.Yearly.Savings)))
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	calcRow := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)

	track := dimStyle.Render(cli.FormatKm(a.slider.Min)+" ") +
		components.SliderTrack(a.slider.Fraction(a.monthlyKm), inner-20) +
		dimStyle.Render(" "+cli.FormatKm(a.slider.Max))
	b.WriteString(components.ContentCard("", calcRow+"\n\n"+track, cw))
	b.WriteString("\n")

	// Petrol and electric cost cards for the selected period.
	toggle := components.Segmented([]string{"Monthly", "Yearly"}, periodIndex(a.period), false)
	halves := components.LayoutRow(cw, 2)
	petrol := components.ContentCard("Petrol cost",
		toggle+"\n"+lipgloss.NewStyle().Foreground(t.Petrol).Bold(true).Render(cli.FormatMoney(sym, pair.Petrol)),
		halves[0])
	electric := components.ContentCard("Electric cost",
		toggle+"\n"+lipgloss.NewStyle().Foreground(t.Electric).Bold(true).Render(cli.FormatMoney(sym, pair.Electric)),
		halves[1])
	b.WriteString(components.CardRow([]string{petrol, electric}))
	b.WriteString("\n")

	summary := bigStyle.Render(cli.FormatMoney(sym, cost.Yearly.Savings)+" / year") +
		labelStyle.Render(fmt.Sprintf("   %s / month · %s less per km",
			cli.FormatMoney(sym, cost.Monthly.Savings), cli.FormatRate(sym, calc.CostPerKmDelta(rates)))) +
		"\n" + dimStyle.Render(fmt.Sprintf("Based on %s/km petrol and %s/km electric assumptions.",
		cli.FormatRate(sym, rates.PetrolCostPerKm), cli.FormatRate(sym, rates.EVCostPerKm)))
	b.WriteString(components.ContentCard("Your estimated savings", summary, cw))
	b.WriteString("\n\n")

	b.WriteString(components.Pills(a.page.SavingPills))
	return b.String()
}

func periodIndex(p model.Period) int {
	if p == model.Monthly {
		return 0
	}
	return 1
}
