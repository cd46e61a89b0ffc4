package cmd

import (
	"fmt"

	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/content"
	"github.com/theirongolddev/switchride/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagSection string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive landing page",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagSection, "section", "hero", "Section to open (hero, savings, range, service, cta)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	anchor, ok := content.ParseAnchor(flagSection)
	if !ok {
		return fmt.Errorf("unknown section %q", flagSection)
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app, err := tui.NewApp(cfg, !config.Exists())
	if err != nil {
		return err
	}
	p := tea.NewProgram(app.OpenAt(anchor), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
