package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Monthly distance: %s\n", cli.FormatKm(cfg.General.MonthlyKm))
	fmt.Printf("    Budget:           %s\n", cli.FormatBudget(cfg.Rates.Symbol(), cfg.General.Budget))
	fmt.Printf("    Period:           %s\n", cfg.General.Period)
	fmt.Println()

	r := cfg.Rates
	fmt.Println("  [Rates]")
	fmt.Printf("    Currency:         %s\n", r.Symbol())
	fmt.Printf("    Petrol cost/km:   %s\n", cli.FormatRate(r.Symbol(), r.PetrolCostPerKm))
	fmt.Printf("    Electric cost/km: %s\n", cli.FormatRate(r.Symbol(), r.EVCostPerKm))
	fmt.Printf("    Petrol km/%s100:   %g\n", r.Symbol(), r.PetrolKmPer100)
	fmt.Printf("    Units/%s100:       %g\n", r.Symbol(), r.EVUnitsPer100)
	fmt.Printf("    Km/unit:          %g\n", r.EVKmPerUnit)
	fmt.Println()

	fmt.Println("  [Slider]")
	fmt.Printf("    Range: %s to %s, step %g\n", cli.FormatKm(cfg.Slider.Min), cli.FormatKm(cfg.Slider.Max), cfg.Slider.Step)
	fmt.Println()

	budgets := make([]string, len(cfg.Range.Budgets))
	for i, b := range cfg.Range.Budgets {
		budgets[i] = cli.FormatBudget(cfg.Rates.Symbol(), b)
	}
	fmt.Println("  [Range]")
	fmt.Printf("    Budgets: %s\n", strings.Join(budgets, ", "))
	fmt.Println()

	fmt.Println("  [Carousel]")
	fmt.Printf("    Interval:          %ds\n", cfg.Carousel.IntervalSec)
	fmt.Printf("    Reset on navigate: %v\n", cfg.Carousel.ResetOnNavigate)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:    %s\n", cfg.Server.Addr)
	fmt.Printf("    Events:     %d buffered\n", cfg.Server.EventsBuffer)
	fmt.Printf("    Rate limit: %d per %ds\n", cfg.Server.RateLimit, cfg.Server.RateWindowSec)
	fmt.Println()

	fmt.Println("  [Logger]")
	fmt.Printf("    Level:  %s\n", cfg.Logger.Level)
	fmt.Printf("    Format: %s\n", cfg.Logger.Format)
	if cfg.Logger.File != "" {
		fmt.Printf("    File:   %s\n", cfg.Logger.File)
	}
	fmt.Println()

	fmt.Println("  Run `switchride setup` to reconfigure.")
	return nil
}
