package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.General.MonthlyKm != 800 {
		t.Fatalf("MonthlyKm = %g, want 800", cfg.General.MonthlyKm)
	}
	if cfg.Carousel.IntervalSec != 8 {
		t.Fatalf("IntervalSec = %d, want 8", cfg.Carousel.IntervalSec)
	}
	if got := len(cfg.Range.Budgets); got != 3 {
		t.Fatalf("len(Budgets) = %d, want 3", got)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.General.MonthlyKm = 1200
	cfg.Rates.PetrolCostPerKm = 3.1

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm = %o, want 600", perm)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
	if got.General.MonthlyKm != 1200 {
		t.Fatalf("MonthlyKm = %g, want 1200", got.General.MonthlyKm)
	}
	if got.Rates.PetrolCostPerKm != 3.1 {
		t.Fatalf("PetrolCostPerKm = %g, want 3.1", got.Rates.PetrolCostPerKm)
	}
}

func TestLoadFrom_RejectsNonPositiveRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[rates]\nev_cost_per_km = 0\npetrol_km_per_100 = -4\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom accepted zero and negative rates")
	}
	for _, want := range []string{"ev_cost_per_km", "petrol_km_per_100"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadFrom_RejectsInfiniteRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[rates]\npetrol_cost_per_km = inf\n\n[slider]\nmax = inf\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom accepted an infinite rate")
	}
	for _, want := range []string{"petrol_cost_per_km", "finite"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if cfg.Rates.PetrolCostPerKm != DefaultRates().PetrolCostPerKm || cfg.Slider.Max != 2000 {
		t.Errorf("LoadFrom returned %+v %+v, want defaults", cfg.Rates, cfg.Slider)
	}
}

func TestRatesValidate_UpperBound(t *testing.T) {
	r := DefaultRates()
	r.EVKmPerUnit = MaxRate
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate rejected MaxRate: %v", err)
	}
	r.EVKmPerUnit = 1e30
	err := r.Validate()
	if err == nil || !strings.Contains(err.Error(), "ev_km_per_unit") {
		t.Fatalf("Validate(1e30) = %v, want ev_km_per_unit error", err)
	}
}

func TestValidate_SliderAndCarousel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Slider.Min = 500
	cfg.Slider.Max = 100
	cfg.Slider.Step = 0
	cfg.Carousel.IntervalSec = 0
	cfg.Range.Budgets = nil

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate accepted broken slider/carousel/range settings")
	}
	for _, want := range []string{"slider.step", "slider bounds", "interval_sec", "range.budgets"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestConfigPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv("SWITCHRIDE_CONFIG", want)
	if got := ConfigPath(); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestEVKmPer100(t *testing.T) {
	r := DefaultRates()
	if got := r.EVKmPer100(); got != 185 {
		t.Fatalf("EVKmPer100 = %g, want 185", got)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("default rates invalid: %v", err)
	}
}
