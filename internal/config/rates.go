package config

import (
	"errors"
	"fmt"
	"math"
)

// RateTable holds the cost and distance constants behind the savings and
// range comparisons. All rates must be positive.
type RateTable struct {
	// PetrolCostPerKm is the running cost of the petrol two-wheeler.
	PetrolCostPerKm float64 `toml:"petrol_cost_per_km" json:"petrol_cost_per_km"`
	// EVCostPerKm is the running cost of the electric scooter.
	EVCostPerKm float64 `toml:"ev_cost_per_km" json:"ev_cost_per_km"`
	// PetrolKmPer100 is the distance petrol covers per 100 spend units.
	PetrolKmPer100 float64 `toml:"petrol_km_per_100" json:"petrol_km_per_100"`
	// EVUnitsPer100 is the energy units (kWh) bought per 100 spend units.
	EVUnitsPer100 float64 `toml:"ev_units_per_100" json:"ev_units_per_100"`
	// EVKmPerUnit is the distance per energy unit.
	EVKmPerUnit float64 `toml:"ev_km_per_unit" json:"ev_km_per_unit"`
	// Currency is the display symbol for spend amounts.
	Currency string `toml:"currency" json:"currency"`
}

// DefaultRates returns the campaign's published assumptions.
func DefaultRates() RateTable {
	return RateTable{
		PetrolCostPerKm: 2.8,
		EVCostPerKm:     0.35,
		PetrolKmPer100:  45,
		EVUnitsPer100:   5,
		EVKmPerUnit:     37,
		Currency:        "₹",
	}
}

// MaxRate bounds every rate so derived distances and costs stay finite.
const MaxRate = 1e6

// Validate reports every rate outside (0, MaxRate].
func (r RateTable) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"petrol_cost_per_km", r.PetrolCostPerKm},
		{"ev_cost_per_km", r.EVCostPerKm},
		{"petrol_km_per_100", r.PetrolKmPer100},
		{"ev_units_per_100", r.EVUnitsPer100},
		{"ev_km_per_unit", r.EVKmPerUnit},
	}

	var errs []error
	for _, f := range fields {
		switch {
		case !(f.value > 0) || math.IsInf(f.value, 0):
			errs = append(errs, fmt.Errorf("rates.%s must be positive and finite, got %g", f.name, f.value))
		case f.value > MaxRate:
			errs = append(errs, fmt.Errorf("rates.%s must be at most %g, got %g", f.name, float64(MaxRate), f.value))
		}
	}
	return errors.Join(errs...)
}

// EVKmPer100 is the electric distance per 100 spend units, going through
// energy units because charging is metered per unit rather than per km.
func (r RateTable) EVKmPer100() float64 {
	return r.EVUnitsPer100 * r.EVKmPerUnit
}

// Symbol returns the currency symbol, defaulting to the rupee sign.
func (r RateTable) Symbol() string {
	if r.Currency == "" {
		return "₹"
	}
	return r.Currency
}
