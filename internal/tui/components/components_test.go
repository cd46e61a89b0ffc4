package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/switchride/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 30; total < 130; total += 7 {
		for n := 1; n <= 4; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
}

func TestCardRowEqualizesHeight(t *testing.T) {
	theme.SetActive("zinc-dark")

	short := ContentCard("Short", "Content", 22)
	tall := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4", 22)

	joined := CardRow([]string{tall, short})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tall); got != want {
		t.Fatalf("joined height = %d, want %d", got, want)
	}
	if got := lipgloss.Width(joined); got != 44 {
		t.Fatalf("joined width = %d, want 44", got)
	}
}

func TestStatCardRowStacksWhenNarrow(t *testing.T) {
	theme.SetActive("zinc-light")
	stats := []Stat{
		{Label: "Est. savings / year", Value: "₹25,000+", Color: theme.Active.Electric},
		{Label: "Cost per km", Value: "₹0.15", Color: theme.Active.Electric},
		{Label: "Range per charge", Value: "151 km", Color: theme.Active.Electric},
	}

	wide := StatCardRow(stats, 90, 24)
	if lipgloss.Width(wide) != 90 {
		t.Fatalf("wide row width = %d, want 90", lipgloss.Width(wide))
	}
	narrow := StatCardRow(stats, 50, 24)
	if lipgloss.Height(narrow) <= lipgloss.Height(wide) {
		t.Fatal("narrow row did not stack")
	}
}

func TestNavItemWidthMatchesRender(t *testing.T) {
	theme.SetActive("terminal")
	for active := range NavItems {
		bar := RenderNavBar("Ola Electric", active, 200)
		want := lipgloss.Width(NavBrand("Ola Electric"))
		for i, item := range NavItems {
			want += NavItemWidth(item, i == active)
			if i < len(NavItems)-1 {
				want++
			}
		}
		if got := lipgloss.Width(bar); got != want {
			t.Fatalf("active=%d: rendered width %d, want %d", active, got, want)
		}
	}
}

func TestNavIdxByKey(t *testing.T) {
	if NavIdxByKey('v') != 3 {
		t.Fatalf("v -> %d, want 3", NavIdxByKey('v'))
	}
	if NavIdxByKey('z') != -1 {
		t.Fatal("unknown key matched a section")
	}
}

func TestDotsAndSlider(t *testing.T) {
	theme.SetActive("zinc-dark")
	if got := stripANSI(Dots(3, 1)); got != "○ ● ○" {
		t.Fatalf("Dots = %q", got)
	}
	if got := stripANSI(SliderTrack(0, 5)); got != "●────" {
		t.Fatalf("SliderTrack(0) = %q", got)
	}
	if got := stripANSI(SliderTrack(1, 5)); got != "━━━━●" {
		t.Fatalf("SliderTrack(1) = %q", got)
	}
	if w := lipgloss.Width(AutoAdvanceBar(0.5, 20)); w != 20 {
		t.Fatalf("AutoAdvanceBar width = %d, want 20", w)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && r == 'm':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}
