package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kasva-dev/kasva/internal/ledger"
	"github.com/kasva-dev/kasva/internal/normalize"
)

// FileName is the config file written at the data directory root.
const FileName = "kasva.yaml"

// Config represents the top-level kasva.yaml configuration.
type Config struct {
	Office   OfficeConfig `yaml:"office"`
	Ledger   LedgerConfig `yaml:"ledger"`
	Cashiers []string     `yaml:"cashiers,omitempty"`
	Git      GitConfig    `yaml:"git"`
}

// OfficeConfig identifies the office running the ledger.
type OfficeConfig struct {
	Name string `yaml:"name"`
	Unit string `yaml:"unit,omitempty"`
}

// LedgerConfig controls the balance and deadline computation.
type LedgerConfig struct {
	DataFile        string `yaml:"data_file"`
	Grouping        string `yaml:"grouping"`          // "category" or "category-cashier"
	BalancePolicy   string `yaml:"balance_policy"`    // "per-group" or "global"
	GracePeriodDays int    `yaml:"grace_period_days"` // settlement grace period
	MoneyLocale     string `yaml:"money_locale"`      // "id" or "en"
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// GroupMode maps the configured grouping onto a ledger mode.
func (c LedgerConfig) GroupMode() (ledger.GroupMode, error) {
	switch c.Grouping {
	case "", string(ledger.GroupByCategory):
		return ledger.GroupByCategory, nil
	case string(ledger.GroupByCategoryCashier):
		return ledger.GroupByCategoryCashier, nil
	default:
		return "", fmt.Errorf("unknown grouping %q", c.Grouping)
	}
}

// Policy maps the configured balance policy onto a ledger policy.
// The default is per-group seeding; it never varies silently.
func (c LedgerConfig) Policy() (ledger.Policy, error) {
	switch c.BalancePolicy {
	case "", string(ledger.PolicyPerGroup):
		return ledger.PolicyPerGroup, nil
	case string(ledger.PolicyGlobal):
		return ledger.PolicyGlobal, nil
	default:
		return "", fmt.Errorf("unknown balance policy %q", c.BalancePolicy)
	}
}

// Locale maps the configured money locale onto a normalize locale.
func (c LedgerConfig) Locale() (normalize.Locale, error) {
	switch c.MoneyLocale {
	case "", string(normalize.LocaleID):
		return normalize.LocaleID, nil
	case string(normalize.LocaleEN):
		return normalize.LocaleEN, nil
	default:
		return "", fmt.Errorf("unknown money locale %q", c.MoneyLocale)
	}
}

// Load reads a kasva.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
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

// Default returns a Config with the documented defaults: per-group
// balance seeding, category grouping, 21-day grace period, Indonesian
// money format.
func Default(officeName string) *Config {
	return &Config{
		Office: OfficeConfig{
			Name: officeName,
		},
		Ledger: LedgerConfig{
			DataFile:        "cashflow.csv",
			Grouping:        string(ledger.GroupByCategory),
			BalancePolicy:   string(ledger.PolicyPerGroup),
			GracePeriodDays: ledger.DefaultGraceDays,
			MoneyLocale:     string(normalize.LocaleID),
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Kasva",
			AuthorEmail: "kasva@localhost",
		},
	}
}
