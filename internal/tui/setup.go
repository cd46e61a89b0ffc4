package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run form.
type SetupValues struct {
	Theme     string
	MonthlyKm string
	Budget    int

	slider  calc.Slider
	budgets []int
	symbol  string
}

// DefaultSetupValues prefills the form from cfg.
func DefaultSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:     cfg.Appearance.Theme,
		MonthlyKm: strconv.FormatFloat(cfg.General.MonthlyKm, 'f', -1, 64),
		Budget:    cfg.General.Budget,
		slider:    calc.NewSlider(cfg.Slider),
		budgets:   append([]int(nil), cfg.Range.Budgets...),
		symbol:    cfg.Rates.Symbol(),
	}
}

// NewSetupForm builds the huh form writing into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}
	budgetOpts := make([]huh.Option[int], 0, len(v.budgets))
	for _, b := range v.budgets {
		budgetOpts = append(budgetOpts, huh.NewOption(cli.FormatBudget(v.symbol, b), b))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to switchride").
				Description("Three quick questions. Run `switchride setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Typical monthly distance (km)").
				Description(fmt.Sprintf("Between %s and %s.", cli.FormatKm(v.slider.Min), cli.FormatKm(v.slider.Max))).
				Value(&v.MonthlyKm).
				Validate(v.validateKm),
			huh.NewSelect[int]().
				Title("Default budget for the range comparison").
				Options(budgetOpts...).
				Value(&v.Budget),
		),
	)
}

func (v SetupValues) validateKm(s string) error {
	km, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if !v.slider.Contains(km) {
		return fmt.Errorf("must be between %g and %g", v.slider.Min, v.slider.Max)
	}
	return nil
}

// Apply copies the answers into cfg. The distance is snapped to the slider.
func (v SetupValues) Apply(cfg config.Config) (config.Config, error) {
	if err := v.validateKm(v.MonthlyKm); err != nil {
		return cfg, fmt.Errorf("monthly distance %q: %w", v.MonthlyKm, err)
	}
	km, _ := strconv.ParseFloat(strings.TrimSpace(v.MonthlyKm), 64)

	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	cfg.General.MonthlyKm = v.slider.Snap(km)
	cfg.General.Budget = v.Budget
	return cfg, nil
}

// updateSetupForm forwards msg to the setup form and applies the answers
// once it completes. Aborting keeps the defaults without saving.
func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.setupForm.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg, err := a.setupVals.Apply(a.cfg)
		if err == nil {
			err = config.Save(cfg)
		}
		a.setupErr = err
		if err == nil {
			a.applyConfig(cfg)
		}
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// applyConfig adopts the saved answers without rebuilding the page.
func (a *App) applyConfig(cfg config.Config) {
	a.cfg = cfg
	theme.SetActive(cfg.Appearance.Theme)
	a.spinner.Style = spinnerStyle()
	a.monthlyKm = a.slider.Snap(cfg.General.MonthlyKm)
	a.budget = a.budgets.Default(cfg.General.Budget)
}
