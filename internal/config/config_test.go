package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHTTPTimeoutIsSeconds(t *testing.T) {
	a := APIConfig{Timeout: 10}
	if got := a.HTTPTimeout(); got != 10*time.Second {
		t.Fatalf("HTTPTimeout = %v", got)
	}
	if got := (APIConfig{}).HTTPTimeout(); got != 0 {
		t.Fatalf("zero timeout = %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLOOMFI_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Source != SourceMock {
		t.Fatalf("source = %q", cfg.API.Source)
	}
	if cfg.API.Timeout != 10 {
		t.Fatalf("timeout = %d", cfg.API.Timeout)
	}
	if cfg.UI.CurrencySymbol != "$" {
		t.Fatalf("currency = %q", cfg.UI.CurrencySymbol)
	}
	if cfg.Budgets["groceries"] != 300 {
		t.Fatalf("default groceries budget = %v", cfg.Budgets["groceries"])
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[api]\nbase_url = \"https://money.example.com\"\nsource = \"api\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BLOOMFI_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://money.example.com" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Source != SourceAPI {
		t.Fatalf("source = %q", cfg.API.Source)
	}
	// Untouched keys keep their defaults.
	if cfg.API.Timeout != 10 {
		t.Fatalf("timeout = %d", cfg.API.Timeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BLOOMFI_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("BLOOMFI_API_BASE_URL", "http://envhost:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://envhost:9000" {
		t.Fatalf("base url = %q", cfg.API.BaseURL)
	}
}

func TestLoadRejectsBadSource(t *testing.T) {
	t.Setenv("BLOOMFI_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("BLOOMFI_API_SOURCE", "spreadsheet")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown source")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("BLOOMFI_CONFIG", path)

	in := Config{
		API:      APIConfig{BaseURL: "http://save.example.com", Source: SourceAPI, Timeout: 30},
		Database: DatabaseConfig{Path: "/tmp/x.db"},
		UI:       UIConfig{DateFormat: "Jan 2, 2006", CurrencySymbol: "$", Locale: "en-US"},
		Budgets:  map[string]float64{"groceries": 425.50, "entertainment": 75},
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.API.BaseURL != in.API.BaseURL || out.API.Source != in.API.Source || out.API.Timeout != in.API.Timeout {
		t.Fatalf("round trip lost API config: %+v", out.API)
	}
	if out.Database.Path != in.Database.Path {
		t.Fatalf("round trip lost db path: %q", out.Database.Path)
	}
	if out.Budgets["groceries"] != 425.50 || out.Budgets["entertainment"] != 75 {
		t.Fatalf("round trip lost budgets: %+v", out.Budgets)
	}
}
