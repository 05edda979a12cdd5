package main

import (
	"testing"

	"github.com/bloomfi/bloomfi/internal/config"
)

func TestSettingsFormToConfig(t *testing.T) {
	cfg := config.Config{
		API:      config.APIConfig{BaseURL: "http://localhost:8000", Source: config.SourceMock},
		Database: config.DatabaseConfig{Path: "/tmp/bloomfi.db"},
		UI:       config.UIConfig{DateFormat: "Jan 2, 2006"},
	}
	f := newSettingsForm(cfg)
	if f.source != 0 {
		t.Fatalf("mock config should select chip 0, got %d", f.source)
	}

	f.source = 1
	f.baseURL.SetValue("https://api.example.com")
	f.dateFormat.SetValue("02/01/2006")
	got := f.toConfig(cfg)
	if got.API.Source != config.SourceAPI {
		t.Fatalf("source = %q", got.API.Source)
	}
	if got.API.BaseURL != "https://api.example.com" {
		t.Fatalf("base url = %q", got.API.BaseURL)
	}
	if got.Database.Path != "/tmp/bloomfi.db" {
		t.Fatalf("db path changed: %q", got.Database.Path)
	}
	if got.UI.DateFormat != "02/01/2006" {
		t.Fatalf("date format = %q", got.UI.DateFormat)
	}
}

func TestSettingsFormBlankFieldsKeepExisting(t *testing.T) {
	cfg := config.Config{
		API:      config.APIConfig{BaseURL: "http://localhost:8000", Source: config.SourceAPI},
		Database: config.DatabaseConfig{Path: "/tmp/bloomfi.db"},
		UI:       config.UIConfig{DateFormat: "Jan 2, 2006"},
	}
	f := newSettingsForm(cfg)
	f.baseURL.SetValue("  ")
	f.dbPath.SetValue("")
	f.dateFormat.SetValue(" ")
	got := f.toConfig(cfg)
	if got.API.BaseURL != "http://localhost:8000" || got.Database.Path != "/tmp/bloomfi.db" {
		t.Fatalf("blank fields overwrote config: %+v", got)
	}
	if got.UI.DateFormat != "Jan 2, 2006" {
		t.Fatalf("blank date format overwrote config: %q", got.UI.DateFormat)
	}
}

func TestLogoutDropsSessionAndData(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m := dashboardModel(t)
	m.activeTab = tabSettings

	next, _ := m.Update(keyMsg("ctrl+l"))
	m = next.(model)
	if m.sess.LoggedIn() {
		t.Fatal("session should be cleared")
	}
	if m.accounts != nil || m.allTransactions != nil {
		t.Fatal("loaded data should be discarded")
	}
	if m.activeTab != tabDashboard {
		t.Fatalf("tab = %d", m.activeTab)
	}
}
