// Package model defines the value types shared by the switchride calculators,
// carousel, and renderers.
package model

import "github.com/shopspring/decimal"

// Period selects which distance window a cost figure covers.
type Period string

// Cost periods offered by the savings toggle.
const (
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	return p == Monthly || p == Yearly
}

// Toggle returns the other period.
func (p Period) Toggle() Period {
	if p == Monthly {
		return Yearly
	}
	return Monthly
}

// CostPair holds the petrol and electric cost for one period.
type CostPair struct {
	Petrol   decimal.Decimal `json:"petrol"`
	Electric decimal.Decimal `json:"electric"`
	Savings  decimal.Decimal `json:"savings"`
}

// CostResult is derived from a monthly distance and a rate table.
type CostResult struct {
	MonthlyKm float64  `json:"monthly_km"`
	YearlyKm  float64  `json:"yearly_km"`
	Monthly   CostPair `json:"monthly"`
	Yearly    CostPair `json:"yearly"`
}

// For returns the cost pair for the given period. Unknown periods get yearly.
func (r CostResult) For(p Period) CostPair {
	if p == Monthly {
		return r.Monthly
	}
	return r.Yearly
}

// YearlySavings is the floored yearly saving as a float for display.
func (r CostResult) YearlySavings() float64 {
	return r.Yearly.Savings.InexactFloat64()
}

// Budget is one entry of the closed set of spend amounts offered by the
// range comparator. The zero value is not a valid budget; obtain budgets
// through calc.BudgetSet.
type Budget struct {
	amount int
}

// NewBudget is used by calc.BudgetSet to mint budgets. Amounts must be positive.
func NewBudget(amount int) Budget {
	return Budget{amount: amount}
}

// Amount returns the spend amount in currency units.
func (b Budget) Amount() int { return b.amount }

// IsZero reports whether b was never minted by a budget set.
func (b Budget) IsZero() bool { return b.amount <= 0 }

// RangeResult is the distance each vehicle covers for one budget.
type RangeResult struct {
	Budget       int     `json:"budget"`
	PetrolKm     float64 `json:"petrol_km"`
	ElectricKm   float64 `json:"electric_km"`
	TimesFarther int     `json:"times_farther"`
	// PetrolShare is petrol distance as a fraction of electric distance,
	// clamped to [0, 1], for the comparison bar.
	PetrolShare float64 `json:"petrol_share"`
}
