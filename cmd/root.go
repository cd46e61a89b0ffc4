// Package cmd implements the switchride CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagTheme string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "switchride",
	Short: "Switch to electric. Save every ride.",
	Long:  "Campaign landing page for electric two-wheelers: savings calculator, range comparison, and hero carousel in your terminal.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (zinc-dark, zinc-light, tokyo-night, terminal)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// loadConfig is the shared config path used by all commands. A broken config
// file is reported and replaced by defaults so the page still renders.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %v; using defaults\n", err)
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg
}
