// Package session persists the logged-in state between runs.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const sessionFile = "session.json"

// Session is the minimal logged-in state: who the user is and the bearer
// token for the backend. A missing session routes the UI to the login screen.
type Session struct {
	Token       string    `json:"token"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoggedIn reports whether s carries a usable token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "bloomfi")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFile), nil
}

// Save writes s atomically (tmp file + rename).
func Save(s Session) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads the stored session. A missing file is not an error; it returns
// an empty, logged-out session.
func Load() (Session, error) {
	path, err := sessionPath()
	if err != nil {
		return Session{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Clear removes the stored session, logging the user out.
func Clear() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
