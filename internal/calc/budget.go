package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/model"
)

// ErrUnknownBudget is returned when a spend amount is not in the budget set.
var ErrUnknownBudget = errors.New("calc: unknown budget")

// BudgetSet is the closed, ordered set of spend amounts the range comparator offers.
type BudgetSet struct {
	budgets []model.Budget
}

// NewBudgetSet builds a set from positive, distinct amounts, keeping their order.
func NewBudgetSet(amounts []int) (BudgetSet, error) {
	if len(amounts) == 0 {
		return BudgetSet{}, errors.New("calc: budget set is empty")
	}
	seen := make(map[int]struct{}, len(amounts))
	budgets := make([]model.Budget, 0, len(amounts))
	for _, a := range amounts {
		if a <= 0 {
			return BudgetSet{}, fmt.Errorf("calc: budget %d must be positive", a)
		}
		if _, dup := seen[a]; dup {
			return BudgetSet{}, fmt.Errorf("calc: budget %d listed twice", a)
		}
		seen[a] = struct{}{}
		budgets = append(budgets, model.NewBudget(a))
	}
	return BudgetSet{budgets: budgets}, nil
}

// Len returns the number of budgets.
func (s BudgetSet) Len() int { return len(s.budgets) }

// All returns the budgets in display order.
func (s BudgetSet) All() []model.Budget {
	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// At returns the i-th budget.
func (s BudgetSet) At(i int) (model.Budget, bool) {
	if i < 0 || i >= len(s.budgets) {
		return model.Budget{}, false
	}
	return s.budgets[i], true
}

// IndexOf returns the position of b, or -1.
func (s BudgetSet) IndexOf(b model.Budget) int {
	for i, x := range s.budgets {
		if x == b {
			return i
		}
	}
	return -1
}

// Lookup returns the budget with the given amount.
func (s BudgetSet) Lookup(amount int) (model.Budget, error) {
	for _, b := range s.budgets {
		if b.Amount() == amount {
			return b, nil
		}
	}
	return model.Budget{}, fmt.Errorf("%w: %d", ErrUnknownBudget, amount)
}

// Parse accepts "500", "₹500", "$500" or "₹1,000". Any leading currency
// symbol is ignored.
func (s BudgetSet) Parse(raw string) (model.Budget, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimLeftFunc(cleaned, func(r rune) bool { return unicode.Is(unicode.Sc, r) })
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	amount, err := strconv.Atoi(cleaned)
	if err != nil {
		return model.Budget{}, fmt.Errorf("%w: %q", ErrUnknownBudget, raw)
	}
	return s.Lookup(amount)
}

// Default returns the budget matching amount, or the first budget.
func (s BudgetSet) Default(amount int) model.Budget {
	if b, err := s.Lookup(amount); err == nil {
		return b
	}
	if len(s.budgets) == 0 {
		return model.Budget{}
	}
	return s.budgets[0]
}

// Step moves delta positions from b, clamped to the ends of the set.
func (s BudgetSet) Step(b model.Budget, delta int) model.Budget {
	if len(s.budgets) == 0 {
		return b
	}
	i := s.IndexOf(b) + delta
	if i < 0 {
		i = 0
	}
	if i >= len(s.budgets) {
		i = len(s.budgets) - 1
	}
	return s.budgets[i]
}

// ComputeRange compares how far each vehicle goes on one budget. Passing a
// budget that no BudgetSet produced is a programming error and panics.
func ComputeRange(budget model.Budget, rates config.RateTable) model.RangeResult {
	if budget.IsZero() {
		panic("calc: ComputeRange called with a zero Budget")
	}

	hundreds := float64(budget.Amount()) / 100
	petrolKm := hundreds * rates.PetrolKmPer100
	electricKm := hundreds * rates.EVKmPer100()

	times := math.Max(1, math.Round(electricKm/math.Max(1, petrolKm)))
	times = math.Min(times, math.MaxInt32)

	share := petrolKm / math.Max(1, electricKm)
	share = math.Min(1, math.Max(0, share))

	return model.RangeResult{
		Budget:       budget.Amount(),
		PetrolKm:     petrolKm,
		ElectricKm:   electricKm,
		TimesFarther: int(times),
		PetrolShare:  share,
	}
}
