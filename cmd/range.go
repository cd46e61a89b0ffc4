package cmd

import (
	"fmt"

	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBudget string
	flagAll    bool
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "How far petrol and electric go on the same spend",
	RunE:  runRange,
}

func init() {
	rangeCmd.Flags().StringVar(&flagBudget, "budget", "", "Spend amount, e.g. 500 or ₹1,000 (default from config)")
	rangeCmd.Flags().BoolVar(&flagAll, "all", false, "Compare every budget")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	budgets, err := calc.NewBudgetSet(cfg.Range.Budgets)
	if err != nil {
		return fmt.Errorf("building budget set: %w", err)
	}

	selected := []model.Budget{budgets.Default(cfg.General.Budget)}
	switch {
	case flagAll:
		selected = budgets.All()
	case flagBudget != "":
		b, err := budgets.Parse(flagBudget)
		if err != nil {
			return fmt.Errorf("--budget: %w", err)
		}
		selected = []model.Budget{b}
	}

	rates := cfg.Rates
	fmt.Println()
	fmt.Println(cli.RenderTitle("RANGE  Same spend, more distance"))
	fmt.Println()

	rows := make([][]string, 0, len(selected))
	results := make([]model.RangeResult, 0, len(selected))
	for _, b := range selected {
		r := calc.ComputeRange(b, rates)
		results = append(results, r)
		rows = append(rows, []string{
			cli.FormatBudget(rates.Symbol(), r.Budget),
			cli.FormatKm(r.PetrolKm),
			cli.FormatKm(r.ElectricKm),
			cli.FormatMultiplier(r.TimesFarther),
			cli.FormatPercent(r.PetrolShare),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Distance per Budget",
		Headers: []string{"Budget", "Petrol", "Electric", "Farther", "Petrol/EV"},
		Rows:    rows,
	}))
	fmt.Println()

	last := results[len(results)-1]
	fmt.Println(cli.RenderComparisonBar("Petrol", last.PetrolShare, 36, cli.ColorPetrol))
	fmt.Println(cli.RenderComparisonBar("Electric", 1, 36, cli.ColorAccent))
	fmt.Println()
	fmt.Println(cli.RenderNote(fmt.Sprintf("Based on %g km per %[2]s100 petrol, %[3]g units per %[2]s100 and %[4]g km per unit electric.",
		rates.PetrolKmPer100, rates.Symbol(), rates.EVUnitsPer100, rates.EVKmPerUnit)))
	fmt.Println()

	return nil
}
