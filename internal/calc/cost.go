// Package calc holds the savings and range arithmetic behind the landing page.
// Every function here is pure and safe to call on each input event.
package calc

import (
	"math"

	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/model"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// ComputeCost derives monthly and yearly running costs for both vehicles from
// a monthly distance. The distance is expected to be clamped by the caller;
// NaN or infinite input panics inside decimal conversion.
func ComputeCost(monthlyKm float64, rates config.RateTable) model.CostResult {
	monthly := decimal.NewFromFloat(monthlyKm)
	yearly := monthly.Mul(monthsPerYear)

	petrol := decimal.NewFromFloat(rates.PetrolCostPerKm)
	electric := decimal.NewFromFloat(rates.EVCostPerKm)

	return model.CostResult{
		MonthlyKm: monthlyKm,
		YearlyKm:  yearly.InexactFloat64(),
		Monthly:   costPair(monthly, petrol, electric),
		Yearly:    costPair(yearly, petrol, electric),
	}
}

func costPair(km, petrolRate, electricRate decimal.Decimal) model.CostPair {
	p := km.Mul(petrolRate)
	e := km.Mul(electricRate)
	return model.CostPair{
		Petrol:   p,
		Electric: e,
		Savings:  decimal.Max(decimal.Zero, p.Sub(e)),
	}
}

// CostPerKmDelta is how much less the electric vehicle costs per km, floored at zero.
func CostPerKmDelta(rates config.RateTable) float64 {
	return math.Max(0, rates.PetrolCostPerKm-rates.EVCostPerKm)
}
