package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Login / register / forgot-password screen
// ---------------------------------------------------------------------------

const (
	loginModeSignIn = iota
	loginModeRegister
	loginModeForgot
)

var loginModeTitles = []string{"Sign in", "Create account", "Reset password"}

type loginForm struct {
	mode     int
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	focus    int
	errMsg   string
	info     string
	busy     bool
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 32
	username.Width = 28

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 28

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.CharLimit = 64
	confirm.Width = 28
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	f := loginForm{
		username: username,
		email:    email,
		password: password,
		confirm:  confirm,
	}
	f.syncFocus()
	return f
}

func (f loginForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

// fieldInputs lists the inputs the active mode shows, in traversal order.
func (f *loginForm) fieldInputs() []*textinput.Model {
	switch f.mode {
	case loginModeRegister:
		return []*textinput.Model{&f.username, &f.email, &f.password, &f.confirm}
	case loginModeForgot:
		return []*textinput.Model{&f.email}
	default:
		return []*textinput.Model{&f.username, &f.password}
	}
}

func (f *loginForm) syncFocus() {
	inputs := f.fieldInputs()
	if f.focus >= len(inputs) {
		f.focus = 0
	}
	for i, in := range inputs {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *loginForm) setMode(mode int) {
	f.mode = mode
	f.focus = 0
	f.errMsg = ""
	f.info = ""
	f.syncFocus()
}

// validate mirrors the checks the forms have always made client-side before
// any request goes out.
func (f *loginForm) validate() string {
	switch f.mode {
	case loginModeSignIn:
		if strings.TrimSpace(f.username.Value()) == "" {
			return "Enter your username."
		}
		if f.password.Value() == "" {
			return "Enter your password."
		}
	case loginModeRegister:
		if strings.TrimSpace(f.username.Value()) == "" {
			return "Choose a username."
		}
		if !strings.Contains(f.email.Value(), "@") {
			return "Enter a valid email address."
		}
		if len(f.password.Value()) < 8 {
			return "Password must be at least 8 characters."
		}
		if f.password.Value() != f.confirm.Value() {
			return "Passwords do not match."
		}
	case loginModeForgot:
		if !strings.Contains(f.email.Value(), "@") {
			return "Enter a valid email address."
		}
	}
	return ""
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.busy {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		inputs := m.login.fieldInputs()
		m.login.focus = (m.login.focus + 1) % len(inputs)
		m.login.syncFocus()
		return m, nil
	case "shift+tab", "up":
		inputs := m.login.fieldInputs()
		m.login.focus = (m.login.focus - 1 + len(inputs)) % len(inputs)
		m.login.syncFocus()
		return m, nil
	case "ctrl+r":
		if m.login.mode == loginModeRegister {
			m.login.setMode(loginModeSignIn)
		} else {
			m.login.setMode(loginModeRegister)
		}
		return m, nil
	case "ctrl+f":
		if m.login.mode == loginModeForgot {
			m.login.setMode(loginModeSignIn)
		} else {
			m.login.setMode(loginModeForgot)
		}
		return m, nil
	case "esc":
		if m.login.mode != loginModeSignIn {
			m.login.setMode(loginModeSignIn)
			return m, nil
		}
		return m, nil
	case "enter":
		return m.submitLogin()
	}

	inputs := m.login.fieldInputs()
	var cmd tea.Cmd
	*inputs[m.login.focus], cmd = inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m model) submitLogin() (tea.Model, tea.Cmd) {
	if msg := m.login.validate(); msg != "" {
		m.login.errMsg = msg
		return m, nil
	}
	m.login.errMsg = ""
	m.login.info = ""
	m.login.busy = true

	switch m.login.mode {
	case loginModeRegister:
		return m, registerCmd(m.client, m.cfg,
			strings.TrimSpace(m.login.username.Value()),
			strings.TrimSpace(m.login.email.Value()),
			m.login.password.Value())
	case loginModeForgot:
		return m, requestResetCmd(m.client, m.cfg, strings.TrimSpace(m.login.email.Value()))
	default:
		return m, loginCmd(m.client, m.cfg,
			strings.TrimSpace(m.login.username.Value()),
			m.login.password.Value())
	}
}
