package components

import (
	"strings"

	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// NavItem is one entry of the nav bar.
type NavItem struct {
	Name   string
	Key    rune
	KeyPos int // index of the shortcut letter in Name, -1 if absent
}

// NavItems are the page sections in scroll order.
var NavItems = []NavItem{
	{Name: "Home", Key: 'h', KeyPos: 0},
	{Name: "Savings", Key: 's', KeyPos: 0},
	{Name: "Range", Key: 'r', KeyPos: 0},
	{Name: "Hyper Service", Key: 'v', KeyPos: 9},
	{Name: "Book", Key: 'c', KeyPos: -1},
}

// NavBrand renders the logo block at the left of the nav bar.
func NavBrand(brand string) string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.Electric).Bold(true).Render(" ◈ ") +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(brand) + "   "
}

// NavItemWidth is the rendered width of item, matching RenderNavBar.
func NavItemWidth(item NavItem, active bool) int {
	w := len(item.Name) + 2 // one space each side
	if !active {
		w += 2 // "[" and "]"
		if item.KeyPos < 0 {
			w++ // key appended after the name
		}
	}
	return w
}

// RenderNavBar renders the brand followed by the section items.
func RenderNavBar(brand string, activeIdx, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentText).
		Background(t.Accent).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(NavItems))
	for i, item := range NavItems {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(" "+item.Name+" "))
			continue
		}
		key := dimKeyStyle.Render("[") + keyStyle.Render(string(item.Key)) + dimKeyStyle.Render("]")
		var label string
		if item.KeyPos >= 0 && item.KeyPos < len(item.Name) {
			label = inactiveStyle.Render(item.Name[:item.KeyPos]) + key +
				inactiveStyle.Render(item.Name[item.KeyPos+1:])
		} else {
			label = inactiveStyle.Render(item.Name) + key
		}
		parts = append(parts, " "+label+" ")
	}

	bar := NavBrand(brand) + strings.Join(parts, " ")
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

// NavIdxByKey returns the nav index for a key press, or -1.
func NavIdxByKey(key rune) int {
	for i, item := range NavItems {
		if item.Key == key {
			return i
		}
	}
	return -1
}
