package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomfi/bloomfi/internal/config"
	"github.com/bloomfi/bloomfi/internal/session"
)

// ---------------------------------------------------------------------------
// Settings tab
// ---------------------------------------------------------------------------

const (
	settingSource = iota
	settingBaseURL
	settingDBPath
	settingDateFormat
	settingCount
)

var sourceLabels = []string{"Mock data", "Live API"}

// settingsForm edits the on-disk config. Changes are written on enter and
// take effect on the next restart; the running model keeps its sources.
type settingsForm struct {
	baseURL    textinput.Model
	dbPath     textinput.Model
	dateFormat textinput.Model
	source     int // index into sourceLabels
	focus      int
}

func newSettingsForm(cfg config.Config) settingsForm {
	baseURL := textinput.New()
	baseURL.CharLimit = 128
	baseURL.Width = 40
	baseURL.SetValue(cfg.API.BaseURL)

	dbPath := textinput.New()
	dbPath.CharLimit = 200
	dbPath.Width = 40
	dbPath.SetValue(cfg.Database.Path)

	dateFormat := textinput.New()
	dateFormat.CharLimit = 32
	dateFormat.Width = 40
	dateFormat.Placeholder = "Jan 2, 2006"
	dateFormat.SetValue(cfg.UI.DateFormat)

	source := 0
	if cfg.API.Source == config.SourceAPI {
		source = 1
	}
	return settingsForm{baseURL: baseURL, dbPath: dbPath, dateFormat: dateFormat, source: source}
}

func (f *settingsForm) syncFocus() {
	f.baseURL.Blur()
	f.dbPath.Blur()
	f.dateFormat.Blur()
	switch f.focus {
	case settingBaseURL:
		f.baseURL.Focus()
	case settingDBPath:
		f.dbPath.Focus()
	case settingDateFormat:
		f.dateFormat.Focus()
	}
}

func (f *settingsForm) toConfig(cfg config.Config) config.Config {
	next := cfg
	if f.source == 1 {
		next.API.Source = config.SourceAPI
	} else {
		next.API.Source = config.SourceMock
	}
	if v := strings.TrimSpace(f.baseURL.Value()); v != "" {
		next.API.BaseURL = v
	}
	if v := strings.TrimSpace(f.dbPath.Value()); v != "" {
		next.Database.Path = v
	}
	if v := strings.TrimSpace(f.dateFormat.Value()); v != "" {
		next.UI.DateFormat = v
	}
	return next
}

func (m model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		m.settings.focus = (m.settings.focus + 1) % settingCount
		m.settings.syncFocus()
		return m, nil
	case "up":
		m.settings.focus = (m.settings.focus - 1 + settingCount) % settingCount
		m.settings.syncFocus()
		return m, nil
	case "left", "right":
		if m.settings.focus == settingSource {
			m.settings.source = (m.settings.source + 1) % len(sourceLabels)
			return m, nil
		}
	case "enter":
		m.cfg = m.settings.toConfig(m.cfg)
		m.setStatus("Saving settings...")
		return m, saveSettingsCmd(m.cfg)
	case "ctrl+l":
		// Log out: drop the stored session and fall back to the sign-in
		// screen. Loaded data is discarded with it.
		_ = session.Clear()
		m.sess = session.Session{}
		m.login = newLoginForm()
		m.accounts = nil
		m.allTransactions = nil
		m.filtered = nil
		m.ready = false
		m.activeTab = tabDashboard
		return m, m.login.focusCmd()
	}

	var cmd tea.Cmd
	switch m.settings.focus {
	case settingBaseURL:
		m.settings.baseURL, cmd = m.settings.baseURL.Update(msg)
	case settingDBPath:
		m.settings.dbPath, cmd = m.settings.dbPath.Update(msg)
	case settingDateFormat:
		m.settings.dateFormat, cmd = m.settings.dateFormat.Update(msg)
	}
	return m, cmd
}

// ---------------------------------------------------------------------------
// Settings view
// ---------------------------------------------------------------------------

func (m model) settingsView() string {
	f := m.settings

	signedInAs := m.sess.DisplayName
	if signedInAs == "" {
		signedInAs = "(unknown)"
	}

	lines := []string{
		filterFieldLabel("Data source", f.focus == settingSource) + renderChips(sourceLabels, f.source),
		filterFieldLabel("API URL", f.focus == settingBaseURL) + f.baseURL.View(),
		filterFieldLabel("Database", f.focus == settingDBPath) + f.dbPath.View(),
		filterFieldLabel("Date format", f.focus == settingDateFormat) + f.dateFormat.View(),
		"",
		fieldLabelStyle.Render("Signed in as ") + titleStyle.Render(signedInAs),
		"",
		statusStyle.Render("enter save · ctrl+l log out · source changes apply on restart"),
	}
	return m.renderSection("Settings", strings.Join(lines, "\n"))
}
