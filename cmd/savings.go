package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/cli"
	"github.com/theirongolddev/switchride/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagKm     float64
	flagPeriod string
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Petrol vs electric running cost for a monthly distance",
	RunE:  runSavings,
}

func init() {
	savingsCmd.Flags().Float64Var(&flagKm, "km", 0, "Monthly distance in km (default from config)")
	savingsCmd.Flags().StringVar(&flagPeriod, "period", "", "Highlight monthly or yearly figures")
	rootCmd.AddCommand(savingsCmd)
}

func runSavings(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	slider := calc.NewSlider(cfg.Slider)

	km := cfg.General.MonthlyKm
	if cmd.Flags().Changed("km") {
		km = flagKm
	}
	if !slider.Contains(km) {
		return fmt.Errorf("--km %g is outside %g..%g", km, slider.Min, slider.Max)
	}
	km = slider.Snap(km)

	period := model.Period(cfg.General.Period)
	if flagPeriod != "" {
		period = model.Period(flagPeriod)
	}
	if !period.Valid() {
		return errors.New("--period must be monthly or yearly")
	}

	rates := cfg.Rates
	sym := rates.Symbol()
	res := calc.ComputeCost(km, rates)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SAVINGS  %s / month", cli.FormatKm(km))))
	fmt.Println()

	mark := func(p model.Period) string {
		if p == period {
			return "●"
		}
		return ""
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Running Cost",
		Headers: []string{"", "Period", "Distance", "Petrol", "Electric", "Savings"},
		Rows: [][]string{
			{mark(model.Monthly), "Monthly", cli.FormatKm(res.MonthlyKm),
				cli.FormatMoney(sym, res.Monthly.Petrol), cli.FormatMoney(sym, res.Monthly.Electric), cli.FormatMoney(sym, res.Monthly.Savings)},
			{mark(model.Yearly), "Yearly", cli.FormatKm(res.YearlyKm),
				cli.FormatMoney(sym, res.Yearly.Petrol), cli.FormatMoney(sym, res.Yearly.Electric), cli.FormatMoney(sym, res.Yearly.Savings)},
		},
	}))
	fmt.Println()

	pair := res.For(period)
	frac := 0.0
	if petrol := pair.Petrol.InexactFloat64(); petrol > 0 {
		frac = pair.Electric.InexactFloat64() / petrol
	}
	fmt.Println(cli.RenderComparisonBar("Petrol", 1, 36, cli.ColorPetrol))
	fmt.Println(cli.RenderComparisonBar("Electric", frac, 36, cli.ColorAccent))
	fmt.Println()
	fmt.Println(cli.RenderNote(fmt.Sprintf("%s less per km. Based on %s/km petrol and %s/km electric assumptions.",
		cli.FormatRate(sym, calc.CostPerKmDelta(rates)), cli.FormatRate(sym, rates.PetrolCostPerKm), cli.FormatRate(sym, rates.EVCostPerKm))))
	fmt.Println()

	return nil
}
