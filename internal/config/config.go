// Package config loads and saves the switchride TOML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all switchride configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Rates      RateTable        `toml:"rates"`
	Slider     SliderConfig     `toml:"slider"`
	Range      RangeConfig      `toml:"range"`
	Carousel   CarouselConfig   `toml:"carousel"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
	Logger     LoggerConfig     `toml:"logger"`
}

// GeneralConfig holds the starting values of the page controls.
type GeneralConfig struct {
	MonthlyKm float64 `toml:"monthly_km"`
	Budget    int     `toml:"budget"`
	Period    string  `toml:"period"`
}

// SliderConfig bounds the monthly distance slider.
type SliderConfig struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

// RangeConfig lists the spend amounts offered by the range comparator.
type RangeConfig struct {
	Budgets []int `toml:"budgets"`
}

// CarouselConfig controls hero auto-advance.
type CarouselConfig struct {
	IntervalSec     int  `toml:"interval_sec"`
	ResetOnNavigate bool `toml:"reset_on_navigate"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds settings for `switchride serve`.
type ServerConfig struct {
	Addr          string `toml:"addr"`
	EventsBuffer  int    `toml:"events_buffer"`
	RateLimit     int    `toml:"rate_limit"`
	RateWindowSec int    `toml:"rate_window_sec"`
}

// LoggerConfig holds structured logging settings.
type LoggerConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			MonthlyKm: 800,
			Budget:    100,
			Period:    "yearly",
		},
		Rates: DefaultRates(),
		Slider: SliderConfig{
			Min:  200,
			Max:  2000,
			Step: 50,
		},
		Range: RangeConfig{
			Budgets: []int{100, 500, 1000},
		},
		Carousel: CarouselConfig{
			IntervalSec:     8,
			ResetOnNavigate: true,
		},
		Appearance: AppearanceConfig{
			Theme: "zinc-dark",
		},
		Server: ServerConfig{
			Addr:          "127.0.0.1:8788",
			EventsBuffer:  200,
			RateLimit:     30,
			RateWindowSec: 60,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the invariants the calculators and carousel rely on.
func (c Config) Validate() error {
	var errs []error
	if err := c.Rates.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !finite(c.Slider.Min, c.Slider.Max, c.Slider.Step) {
		errs = append(errs, fmt.Errorf("slider min/max/step must be finite, got %g/%g/%g",
			c.Slider.Min, c.Slider.Max, c.Slider.Step))
	}
	if !(c.Slider.Step > 0) {
		errs = append(errs, errors.New("slider.step must be positive"))
	}
	if !(c.Slider.Min >= 0 && c.Slider.Min < c.Slider.Max) {
		errs = append(errs, fmt.Errorf("slider bounds [%g, %g] are invalid", c.Slider.Min, c.Slider.Max))
	}
	if len(c.Range.Budgets) == 0 {
		errs = append(errs, errors.New("range.budgets must not be empty"))
	}
	for _, b := range c.Range.Budgets {
		if b <= 0 {
			errs = append(errs, fmt.Errorf("range.budgets entry %d must be positive", b))
		}
	}
	if c.Carousel.IntervalSec < 1 {
		errs = append(errs, errors.New("carousel.interval_sec must be at least 1"))
	}
	return errors.Join(errs...)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "switchride")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "switchride")
}

// ConfigPath returns the full path to the config file.
// SWITCHRIDE_CONFIG overrides the XDG location.
func ConfigPath() string {
	if p := os.Getenv("SWITCHRIDE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path on top of the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFrom
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
