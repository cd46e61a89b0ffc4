package tui

import (
	"testing"

	"github.com/theirongolddev/switchride/internal/content"
	"github.com/theirongolddev/switchride/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
)

func TestSectionAtXMatchesNavWidths(t *testing.T) {
	page := content.Page()
	brandW := lipgloss.Width(components.NavBrand(page.Brand))

	for active := 0; active < sectionCount; active++ {
		a := App{page: page, section: active}
		pos := brandW

		for i, item := range components.NavItems {
			w := components.NavItemWidth(item, i == active)
			x := pos + w/2 // midpoint inside this item
			if got := a.sectionAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> section=%d, want %d", active, x, got, i)
			}
			pos += w + 1 // separator
		}
	}
}

func TestSectionAtXOutsideItems(t *testing.T) {
	a := App{page: content.Page()}
	if got := a.sectionAtX(0); got != -1 {
		t.Errorf("brand click -> %d, want -1", got)
	}
	if got := a.sectionAtX(10_000); got != -1 {
		t.Errorf("far right click -> %d, want -1", got)
	}
}
