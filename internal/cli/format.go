// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatIndian groups an integer the Indian way: the last three digits, then
// pairs. e.g., 1234567 -> "12,34,567"
func FormatIndian(n int64) string {
	if n < 0 {
		return "-" + FormatIndian(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatMoney rounds to whole currency units and formats with Indian grouping.
// e.g., ("₹", 3359.6) -> "₹3,360"
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + FormatIndian(d.Round(0).IntPart())
}

// FormatRate formats a per-km rate without trailing zeros. e.g., ("₹", 2.8) -> "₹2.8"
func FormatRate(symbol string, v float64) string {
	return symbol + strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatKm rounds a distance to whole kilometres. e.g., 185.2 -> "185 km"
func FormatKm(km float64) string {
	return FormatIndian(int64(math.Round(km))) + " km"
}

// FormatMultiplier formats a "times farther" ratio. e.g., 4 -> "4×"
func FormatMultiplier(n int) string {
	return strconv.Itoa(n) + "×"
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatCountdown formats the time left before the next slide. e.g., 7.2s -> "8s"
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return fmt.Sprintf("%ds", int64(math.Ceil(d.Seconds())))
}

// FormatBudget formats a budget amount the way the page labels it. e.g., ("₹", 1000) -> "₹1,000"
func FormatBudget(symbol string, amount int) string {
	return symbol + FormatIndian(int64(amount))
}
