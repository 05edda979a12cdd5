package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Login screen
// ---------------------------------------------------------------------------

var (
	loginErrStyle  = lipgloss.NewStyle().Foreground(colorError)
	loginInfoStyle = lipgloss.NewStyle().Foreground(colorInfo)
)

func (m model) loginView() string {
	f := m.login

	var fields []string
	switch f.mode {
	case loginModeRegister:
		fields = []string{
			loginFieldLabel("Username", f.focus == 0) + f.username.View(),
			loginFieldLabel("Email", f.focus == 1) + f.email.View(),
			loginFieldLabel("Password", f.focus == 2) + f.password.View(),
			loginFieldLabel("Confirm", f.focus == 3) + f.confirm.View(),
		}
	case loginModeForgot:
		fields = []string{
			loginFieldLabel("Email", f.focus == 0) + f.email.View(),
		}
	default:
		fields = []string{
			loginFieldLabel("Username", f.focus == 0) + f.username.View(),
			loginFieldLabel("Password", f.focus == 1) + f.password.View(),
		}
	}

	lines := []string{
		headerAppStyle.Render(appName),
		titleStyle.Render(loginModeTitles[f.mode]),
		"",
	}
	lines = append(lines, fields...)
	lines = append(lines, "")

	switch {
	case f.busy:
		lines = append(lines, statusStyle.Render("Working..."))
	case f.errMsg != "":
		lines = append(lines, loginErrStyle.Render(f.errMsg))
	case f.info != "":
		lines = append(lines, loginInfoStyle.Render(f.info))
	default:
		lines = append(lines, "")
	}

	lines = append(lines, "", statusStyle.Render("enter submit · ctrl+r register · ctrl+f forgot password"))

	card := modalStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func loginFieldLabel(name string, focused bool) string {
	text := padRight(name, 10)
	if focused {
		return fieldFocusStyle.Render("› "+text) + " "
	}
	return fieldLabelStyle.Render("  "+text) + " "
}
