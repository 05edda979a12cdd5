package session

import (
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := Session{
		Token:       "abc123",
		DisplayName: "jo",
		CreatedAt:   time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Token != in.Token || out.DisplayName != in.DisplayName {
		t.Fatalf("round trip lost fields: %+v", out)
	}
	if !out.LoggedIn() {
		t.Fatal("loaded session should be logged in")
	}
}

func TestLoadMissingFileIsLoggedOut(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LoggedIn() {
		t.Fatal("missing file should mean logged out")
	}
}

func TestClearRemovesSession(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Save(Session{Token: "abc"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LoggedIn() {
		t.Fatal("session survived Clear")
	}

	// Clearing again is a no-op, not an error.
	if err := Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
