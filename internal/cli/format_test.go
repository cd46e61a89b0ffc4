package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatIndian(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		999:       "999",
		1000:      "1,000",
		23520:     "23,520",
		100000:    "1,00,000",
		1234567:   "12,34,567",
		123456789: "12,34,56,789",
		-26880:    "-26,880",
	}
	for in, want := range cases {
		if got := FormatIndian(in); got != want {
			t.Fatalf("FormatIndian(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestMoneyFormatters(t *testing.T) {
	if got := FormatMoney("₹", decimal.NewFromInt(26880)); got != "₹26,880" {
		t.Fatalf("FormatMoney = %q", got)
	}
	if got := FormatMoney("₹", decimal.RequireFromString("123456.6")); got != "₹1,23,457" {
		t.Fatalf("FormatMoney rounding = %q", got)
	}
	if got := FormatRate("₹", 2.8); got != "₹2.8" {
		t.Fatalf("FormatRate = %q", got)
	}
	if got := FormatBudget("₹", 1000); got != "₹1,000" {
		t.Fatalf("FormatBudget = %q", got)
	}
	if got := FormatMoney("$", decimal.RequireFromString("3359.6")); got != "$3,360" {
		t.Fatalf("FormatMoney with configured symbol = %q", got)
	}
}

func TestDistanceFormatters(t *testing.T) {
	if got := FormatKm(185.2); got != "185 km" {
		t.Fatalf("FormatKm = %q", got)
	}
	if got := FormatMultiplier(4); got != "4×" {
		t.Fatalf("FormatMultiplier = %q", got)
	}
	if got := FormatCountdown(7200 * time.Millisecond); got != "8s" {
		t.Fatalf("FormatCountdown = %q", got)
	}
	if got := FormatCountdown(-time.Second); got != "0s" {
		t.Fatalf("FormatCountdown negative = %q", got)
	}
}

func TestRenderTableAlignsRupeeCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Vehicle", "Yearly"},
		Rows: [][]string{
			{"Petrol", "₹26,880"},
			{"Electric", "₹3,360"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("table has %d lines, want 6:\n%s", len(lines), out)
	}
	w := -1
	for _, l := range lines {
		lw := len([]rune(stripANSI(l)))
		if w == -1 {
			w = lw
		}
		if lw != w {
			t.Fatalf("ragged table:\n%s", out)
		}
	}
}

// stripANSI drops SGR escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			in = true
		case in && r == 'm':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return b.String()
}
