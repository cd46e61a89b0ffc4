// Package tui provides the interactive Bubble Tea landing page for switchride.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/carousel"
	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/content"
	"github.com/theirongolddev/switchride/internal/model"
	"github.com/theirongolddev/switchride/internal/tui/components"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Section indices, matching components.NavItems and content.Anchors.
const (
	sectionHero = iota
	sectionSavings
	sectionRange
	sectionService
	sectionCTA
	sectionCount
)

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	page    model.Page
	slider  calc.Slider
	budgets calc.BudgetSet

	// Hero carousel. Only Update mutates these.
	carousel carousel.Carousel
	sched    carousel.Schedule
	now      func() time.Time

	// Savings calculator
	monthlyKm float64
	period    model.Period

	// Range comparator
	budget model.Budget

	// UI state
	width    int
	height   int
	section  int
	showHelp bool
	spinner  spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	setupErr  error
}

const (
	minTerminalWidth = 60
	compactWidth     = 96
	maxContentWidth  = 120
	minContentHeight = 5
	minStatCardWidth = 24
)

// NewApp creates the TUI model from a validated config. firstRun shows the
// setup form before the page.
func NewApp(cfg config.Config, firstRun bool) (App, error) {
	budgets, err := calc.NewBudgetSet(cfg.Range.Budgets)
	if err != nil {
		return App{}, fmt.Errorf("building budget set: %w", err)
	}

	page := content.Page()
	c, err := carousel.New(page.Slides)
	if err != nil {
		return App{}, fmt.Errorf("building carousel: %w", err)
	}

	slider := calc.NewSlider(cfg.Slider)
	period := model.Period(cfg.General.Period)
	if !period.Valid() {
		period = model.Yearly
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle()

	a := App{
		cfg:       cfg,
		page:      page,
		slider:    slider,
		budgets:   budgets,
		carousel:  c,
		sched:     carousel.NewSchedule(time.Duration(cfg.Carousel.IntervalSec)*time.Second, carousel.PolicyFor(cfg.Carousel.ResetOnNavigate)),
		now:       time.Now,
		monthlyKm: slider.Snap(cfg.General.MonthlyKm),
		period:    period,
		budget:    budgets.Default(cfg.General.Budget),
		spinner:   sp,
	}
	a.sched.Start(a.now())

	if firstRun {
		v := DefaultSetupValues(cfg)
		a.setupVals = &v
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a, nil
}

// OpenAt returns a copy of a showing the section with the given anchor.
func (a App) OpenAt(anchor model.Anchor) App {
	a.followTarget(model.Target{Anchor: anchor})
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		tickCmd(),
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if i := a.sectionAtX(msg.X); i >= 0 {
				a.goToSection(i)
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.handleSectionKey(key) {
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.goToSection((a.section + 1) % sectionCount)
		case "shift+tab":
			a.goToSection((a.section - 1 + sectionCount) % sectionCount)
		case "b":
			a.goToSection(sectionCTA)
		default:
			if len(key) == 1 {
				if i := components.NavIdxByKey(rune(key[0])); i >= 0 {
					a.goToSection(i)
				}
			}
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tickMsg:
		a.advanceIfDue(time.Time(msg))
		return a, tickCmd()
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// handleSectionKey applies keys owned by the visible section.
func (a *App) handleSectionKey(key string) bool {
	switch a.section {
	case sectionHero:
		return a.heroKey(key)
	case sectionSavings:
		return a.savingsKey(key)
	case sectionRange:
		return a.rangeKey(key)
	case sectionCTA:
		if key == "enter" {
			a.followTarget(a.page.CTA)
			return true
		}
	}
	return false
}

// goToSection switches the visible section. The carousel schedule runs only
// while the hero is on screen.
func (a *App) goToSection(i int) {
	if i < 0 || i >= sectionCount || i == a.section {
		return
	}
	if a.section == sectionHero {
		a.sched.Stop()
	}
	a.section = i
	if i == sectionHero {
		a.sched.Start(a.now())
	}
}

func (a *App) followTarget(t model.Target) {
	for i, anchor := range content.Anchors() {
		if anchor == t.Anchor {
			a.goToSection(i)
			return
		}
	}
}

// advanceIfDue moves the carousel on when its interval has elapsed.
func (a *App) advanceIfDue(now time.Time) {
	if a.sched.Due(now) {
		a.carousel.Next()
		a.sched.Fired(now)
	}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  switchride needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Electric).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	groups := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"h s r v c", "Jump to section"},
			{"tab ⇧tab", "Next / previous section"},
			{"b", "Book a test ride"},
		}},
		{"Home", []struct{ key, desc string }{
			{"← →", "Previous / next slide"},
			{"1-" + fmt.Sprint(a.carousel.Len()), "Go to slide"},
			{"enter o", "Primary / secondary action"},
		}},
		{"Savings", []struct{ key, desc string }{
			{"← →", "Distance -/+ one step"},
			{"home end", "Minimum / maximum distance"},
			{"m y p", "Monthly / yearly / toggle"},
		}},
		{"Range", []struct{ key, desc string }{
			{"1 2 3 ← →", "Choose budget"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(g.name))
		b.WriteString("\n")
		for _, bind := range g.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderNavBar(a.page.Brand, a.section, w)
	hints := a.sectionHints()
	if a.setupErr != nil {
		hints = "setup not saved: " + a.setupErr.Error()
	}
	statusBar := components.RenderStatusBar(w, hints, content.BookTestRide)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var body string
	switch a.section {
	case sectionHero:
		body = a.renderHero(cw)
	case sectionSavings:
		body = a.renderSavings(cw)
	case sectionRange:
		body = a.renderRange(cw)
	case sectionService:
		body = a.renderService(cw)
	case sectionCTA:
		body = a.renderCTA(cw)
	}

	body = padHeight(truncateHeight("\n"+body, contentH), contentH)
	body = fillLinesWithBackground(body, cw, t.Background)
	body = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) sectionHints() string {
	switch a.section {
	case sectionHero:
		return "←/→ slides  enter/o actions"
	case sectionSavings:
		return "←/→ distance  m/y period"
	case sectionRange:
		return "1-" + fmt.Sprint(a.budgets.Len()) + " budget"
	case sectionCTA:
		return "enter calculate savings"
	}
	return ""
}

// ─── Helpers ────────────────────────────────────────────────────

func spinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.Electric)
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// sectionAtX returns the nav item under column x, or -1.
// Hitboxes use the same widths as RenderNavBar.
func (a App) sectionAtX(x int) int {
	pos := lipgloss.Width(components.NavBrand(a.page.Brand))
	for i, item := range components.NavItems {
		w := components.NavItemWidth(item, i == a.section)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}
