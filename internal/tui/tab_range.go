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

func (a *App) rangeKey(key string) bool {
	switch key {
	case "left":
		a.budget = a.budgets.Step(a.budget, -1)
	case "right":
		a.budget = a.budgets.Step(a.budget, 1)
	default:
		if len(key) != 1 || key[0] < '1' || key[0] > '9' {
			return false
		}
		b, ok := a.budgets.At(int(key[0] - '1'))
		if !ok {
			return false
		}
		a.budget = b
	}
	return true
}

func (a App) renderRange(cw int) string {
	t := theme.Active
	sec, _ := a.page.SectionFor(model.AnchorRange)
	rates := a.cfg.Rates
	sym := rates.Symbol()
	res := calc.ComputeRange(a.budget, rates)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(components.SectionHeader(sec.Label, sec.Heading, sec.Body, cw))
	b.WriteString("\n\n")

	labels := make([]string, 0, a.budgets.Len())
	for _, bud := range a.budgets.All() {
		labels = append(labels, cli.FormatBudget(sym, bud.Amount()))
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("Budget comparison"))
	b.WriteString("  ")
	b.WriteString(components.Segmented(labels, a.budgets.IndexOf(a.budget), true))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Pick a spend amount to see the distance difference."))
	b.WriteString("\n\n")

	halves := components.LayoutRow(cw, 2)
	petrol := components.StatCard("Petrol 2-wheeler", cli.FormatKm(res.PetrolKm),
		fmt.Sprintf("≈ %g km per %s100", rates.PetrolKmPer100, sym), t.Petrol, halves[0])
	electric := components.StatCard(a.page.Brand, cli.FormatKm(res.ElectricKm),
		fmt.Sprintf("≈ %g units per %s100 → %g km/unit", rates.EVUnitsPer100, sym, rates.EVKmPerUnit), t.Electric, halves[1])
	b.WriteString(components.CardRow([]string{petrol, electric}))
	b.WriteString("\n\n")

	b.WriteString(" " + components.Bar(res.PetrolShare, t.Petrol, cw-2))
	b.WriteString("\n")
	leftLabel := "Petrol 2-wheeler"
	rightLabel := fmt.Sprintf("%s (%s farther)", a.page.Brand, cli.FormatMultiplier(res.TimesFarther))
	gap := max(cw-2-lipgloss.Width(leftLabel)-lipgloss.Width(rightLabel), 1)
	b.WriteString(" " + dimStyle.Render(leftLabel+strings.Repeat(" ", gap)+rightLabel))
	b.WriteString("\n\n")

	b.WriteString(" " + dimStyle.Render(fmt.Sprintf(
		"Based on average petrol 2-wheeler mileage of %g km/%s100 and %s at %g km per unit.",
		rates.PetrolKmPer100, sym, a.page.Brand, rates.EVKmPerUnit)))
	return b.String()
}
