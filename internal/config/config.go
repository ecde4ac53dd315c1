package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level kasa.yaml configuration.
type Config struct {
	Household HouseholdConfig `yaml:"household"`
	Locale    LocaleConfig    `yaml:"locale"`
	Alerts    AlertsConfig    `yaml:"alerts"`
}

// HouseholdConfig identifies the household and the acting member.
type HouseholdConfig struct {
	Name        string `yaml:"name"`
	CurrentUser string `yaml:"current_user"` // user ID acting in this session
}

// LocaleConfig controls number and currency rendering.
type LocaleConfig struct {
	Tag      string `yaml:"tag"`      // BCP 47 tag, e.g. "tr"
	Currency string `yaml:"currency"` // ISO 4217 code, e.g. "TRY"
	Symbol   string `yaml:"symbol"`   // prefix symbol, e.g. "₺"
}

// AlertsConfig holds the payment-urgency thresholds and the look-ahead
// window, in days.
type AlertsConfig struct {
	UrgentDays  int `yaml:"urgent_days"`
	WarningDays int `yaml:"warning_days"`
	WindowDays  int `yaml:"window_days"`
}

// Load reads a kasa.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new household.
func Default(householdName string) *Config {
	return &Config{
		Household: HouseholdConfig{
			Name: householdName,
		},
		Locale: LocaleConfig{
			Tag:      "tr",
			Currency: "TRY",
			Symbol:   "₺",
		},
		Alerts: AlertsConfig{
			UrgentDays:  3,
			WarningDays: 5,
			WindowDays:  30,
		},
	}
}

// applyDefaults fills unset alert thresholds and locale fields so a sparse
// config file still behaves.
func (c *Config) applyDefaults() {
	def := Default(c.Household.Name)
	if c.Locale.Tag == "" {
		c.Locale.Tag = def.Locale.Tag
	}
	if c.Locale.Currency == "" {
		c.Locale.Currency = def.Locale.Currency
	}
	if c.Locale.Symbol == "" {
		c.Locale.Symbol = def.Locale.Symbol
	}
	if c.Alerts.UrgentDays == 0 {
		c.Alerts.UrgentDays = def.Alerts.UrgentDays
	}
	if c.Alerts.WarningDays == 0 {
		c.Alerts.WarningDays = def.Alerts.WarningDays
	}
	if c.Alerts.WindowDays == 0 {
		c.Alerts.WindowDays = def.Alerts.WindowDays
	}
}
