package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`

	// Budgets maps lower-cased category names to monthly allocations in
	// dollars. Keys are lower-cased because viper folds config keys.
	Budgets map[string]float64 `mapstructure:"budgets"`
}

// APIConfig selects and points at the data source.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Source  string `mapstructure:"source"` // "api" or "mock"
	Timeout int    `mapstructure:"timeout"` // seconds
}

// HTTPTimeout converts the configured timeout from seconds into the duration
// the HTTP client expects.
func (a APIConfig) HTTPTimeout() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// DatabaseConfig holds the sqlite path backing the mock data source.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`
}

// SourceMock and SourceAPI are the accepted API.Source values.
const (
	SourceMock = "mock"
	SourceAPI  = "api"
)

// DefaultBudgets returns the starting monthly allocations. Categories
// without an entry carry no budget until the user sets one.
func DefaultBudgets() map[string]float64 {
	return map[string]float64{
		"bills & utilities":    2200,
		"groceries":            300,
		"food & drinks":        250,
		"car & transportation": 150,
		"shopping":             150,
		"entertainment":        100,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix BLOOMFI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.source", SourceMock)
	v.SetDefault("api.timeout", 10)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "bloomfi", "bloomfi.db"))
	v.SetDefault("ui.date_format", "Jan 2, 2006")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.locale", "en-US")
	v.SetDefault("budgets", DefaultBudgets())

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BLOOMFI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bloomfi"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BLOOMFI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.API.Source != SourceMock && c.API.Source != SourceAPI {
		return Config{}, fmt.Errorf("api.source must be %q or %q, got %q", SourceMock, SourceAPI, c.API.Source)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings tab for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("BLOOMFI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "bloomfi", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.source", cfg.API.Source)
	v.Set("api.timeout", cfg.API.Timeout)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.locale", cfg.UI.Locale)
	if len(cfg.Budgets) > 0 {
		v.Set("budgets", cfg.Budgets)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
