package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/model"

	"github.com/shopspring/decimal"
)

func mustBudgets(t *testing.T, amounts ...int) BudgetSet {
	t.Helper()
	set, err := NewBudgetSet(amounts)
	if err != nil {
		t.Fatalf("NewBudgetSet(%v): %v", amounts, err)
	}
	return set
}

func TestComputeCost_CommuterScenario(t *testing.T) {
	r := ComputeCost(800, config.DefaultRates())

	if r.YearlyKm != 9600 {
		t.Fatalf("YearlyKm = %g, want 9600", r.YearlyKm)
	}
	checks := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"yearly petrol", r.Yearly.Petrol, 26880},
		{"yearly electric", r.Yearly.Electric, 3360},
		{"yearly savings", r.Yearly.Savings, 23520},
		{"monthly petrol", r.Monthly.Petrol, 2240},
		{"monthly electric", r.Monthly.Electric, 280},
		{"monthly savings", r.Monthly.Savings, 1960},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s = %s, want %d", c.name, c.got, c.want)
		}
	}
	if r.YearlySavings() != 23520 {
		t.Errorf("YearlySavings() = %g, want 23520", r.YearlySavings())
	}
}

func TestComputeCost_SavingsAcrossSlider(t *testing.T) {
	rates := config.DefaultRates()
	slider := NewSlider(config.DefaultConfig().Slider)
	delta := decimal.NewFromFloat(rates.PetrolCostPerKm).Sub(decimal.NewFromFloat(rates.EVCostPerKm))

	values := slider.Values()
	if len(values) != 37 {
		t.Fatalf("slider has %d positions, want 37", len(values))
	}
	for _, km := range values {
		r := ComputeCost(km, rates)
		want := decimal.Max(decimal.Zero, decimal.NewFromFloat(km).Mul(decimal.NewFromInt(12)).Mul(delta))
		if !r.Yearly.Savings.Equal(want) {
			t.Fatalf("km=%g savings = %s, want %s", km, r.Yearly.Savings, want)
		}
		if r.Yearly.Savings.IsNegative() {
			t.Fatalf("km=%g savings negative: %s", km, r.Yearly.Savings)
		}
	}
}

func TestComputeCost_Zero(t *testing.T) {
	r := ComputeCost(0, config.DefaultRates())
	for name, d := range map[string]decimal.Decimal{
		"yearly petrol":    r.Yearly.Petrol,
		"yearly electric":  r.Yearly.Electric,
		"yearly savings":   r.Yearly.Savings,
		"monthly petrol":   r.Monthly.Petrol,
		"monthly electric": r.Monthly.Electric,
		"monthly savings":  r.Monthly.Savings,
	} {
		if !d.IsZero() {
			t.Errorf("%s = %s, want 0", name, d)
		}
	}
}

func TestComputeCost_SavingsFlooredWhenElectricCostsMore(t *testing.T) {
	rates := config.DefaultRates()
	rates.EVCostPerKm = 5
	r := ComputeCost(1000, rates)
	if !r.Yearly.Savings.IsZero() || !r.Monthly.Savings.IsZero() {
		t.Fatalf("savings = %s / %s, want 0", r.Monthly.Savings, r.Yearly.Savings)
	}
	if got := CostPerKmDelta(rates); got != 0 {
		t.Fatalf("CostPerKmDelta = %g, want 0", got)
	}
}

func TestComputeRange_HundredRupees(t *testing.T) {
	set := mustBudgets(t, 100, 500, 1000)
	b, err := set.Lookup(100)
	if err != nil {
		t.Fatal(err)
	}

	r := ComputeRange(b, config.DefaultRates())
	if r.PetrolKm != 45 {
		t.Errorf("PetrolKm = %g, want 45", r.PetrolKm)
	}
	if r.ElectricKm != 185 {
		t.Errorf("ElectricKm = %g, want 185", r.ElectricKm)
	}
	if r.TimesFarther != 4 {
		t.Errorf("TimesFarther = %d, want 4", r.TimesFarther)
	}
	wantShare := 45.0 / 185.0
	if r.PetrolShare != wantShare {
		t.Errorf("PetrolShare = %g, want %g", r.PetrolShare, wantShare)
	}
}

func TestComputeRange_TimesFartherAtLeastOne(t *testing.T) {
	set := mustBudgets(t, 100, 500, 1000)
	regimes := []config.RateTable{
		config.DefaultRates(),
		{PetrolCostPerKm: 1, EVCostPerKm: 1, PetrolKmPer100: 500, EVUnitsPer100: 1, EVKmPerUnit: 1},
		{PetrolCostPerKm: 1, EVCostPerKm: 1, PetrolKmPer100: 0.1, EVUnitsPer100: 0.1, EVKmPerUnit: 0.1},
	}
	for _, rates := range regimes {
		for _, b := range set.All() {
			r := ComputeRange(b, rates)
			if r.TimesFarther < 1 {
				t.Fatalf("budget %d rates %+v: TimesFarther = %d", b.Amount(), rates, r.TimesFarther)
			}
			if r.PetrolShare < 0 || r.PetrolShare > 1 {
				t.Fatalf("budget %d: PetrolShare = %g out of [0,1]", b.Amount(), r.PetrolShare)
			}
		}
	}
}

func TestComputeRange_ExtremeRatesStayPositive(t *testing.T) {
	set := mustBudgets(t, 100, 500, 1000)
	rates := config.DefaultRates()
	rates.EVKmPerUnit = 1e30 // ComputeRange does not rely on config bounds

	for _, b := range set.All() {
		r := ComputeRange(b, rates)
		if r.TimesFarther != math.MaxInt32 {
			t.Fatalf("budget %d: TimesFarther = %d, want %d", b.Amount(), r.TimesFarther, math.MaxInt32)
		}
		if r.PetrolShare < 0 || r.PetrolShare > 1 {
			t.Fatalf("budget %d: PetrolShare = %g out of [0,1]", b.Amount(), r.PetrolShare)
		}
	}
}

func TestComputeRange_ZeroBudgetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ComputeRange did not panic on a zero budget")
		}
	}()
	ComputeRange(model.Budget{}, config.DefaultRates())
}

func TestBudgetSet_Parse(t *testing.T) {
	set := mustBudgets(t, 100, 500, 1000)

	for raw, want := range map[string]int{"100": 100, " ₹500": 500, "₹1,000": 1000, "$500": 500} {
		b, err := set.Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if b.Amount() != want {
			t.Fatalf("Parse(%q) = %d, want %d", raw, b.Amount(), want)
		}
	}

	for _, raw := range []string{"250", "abc", ""} {
		if _, err := set.Parse(raw); !errors.Is(err, ErrUnknownBudget) {
			t.Fatalf("Parse(%q) err = %v, want ErrUnknownBudget", raw, err)
		}
	}
}

func TestBudgetSet_StepAndRejects(t *testing.T) {
	set := mustBudgets(t, 100, 500, 1000)
	first, _ := set.At(0)

	if got := set.Step(first, -1); got != first {
		t.Fatalf("Step below start = %d, want %d", got.Amount(), first.Amount())
	}
	if got := set.Step(first, 5).Amount(); got != 1000 {
		t.Fatalf("Step past end = %d, want 1000", got)
	}

	if _, err := NewBudgetSet([]int{100, 100}); err == nil {
		t.Fatal("NewBudgetSet accepted duplicates")
	}
	if _, err := NewBudgetSet([]int{0}); err == nil {
		t.Fatal("NewBudgetSet accepted a zero amount")
	}
}

func TestSlider(t *testing.T) {
	s := Slider{Min: 200, Max: 2000, Step: 50}

	cases := []struct {
		in, want float64
	}{
		{0, 200},
		{5000, 2000},
		{824, 800},
		{826, 850},
		{2000, 2000},
	}
	for _, c := range cases {
		if got := s.Snap(c.in); got != c.want {
			t.Errorf("Snap(%g) = %g, want %g", c.in, got, c.want)
		}
	}

	if got := s.Move(800, 3); got != 950 {
		t.Errorf("Move(800, 3) = %g, want 950", got)
	}
	if got := s.Move(1990, 1); got != 2000 {
		t.Errorf("Move(1990, 1) = %g, want 2000", got)
	}
	if got := s.Fraction(1100); got != 0.5 {
		t.Errorf("Fraction(1100) = %g, want 0.5", got)
	}
	if s.Contains(150) {
		t.Error("Contains(150) = true, want false")
	}
}

func TestSliderValuesCapped(t *testing.T) {
	s := Slider{Min: 0, Max: 1e300, Step: 1}
	if got := len(s.Values()); got != maxPositions {
		t.Fatalf("len(Values) = %d, want %d", got, maxPositions)
	}
}
