package main

import (
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int // expected number of lines
	}{
		{"empty", "", 1},
		{"single", "hello", 1},
		{"two_lines", "hello\nworld", 2},
		{"trailing_newline", "hello\n", 2},
		{"three_lines", "a\nb\nc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.input)
			if len(got) != tt.want {
				t.Errorf("splitLines(%q) = %d lines, want %d", tt.input, len(got), tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"shorter", "hi", 5, "hi   "},
		{"exact", "hello", 5, "hello"},
		{"longer", "hello world", 5, "hello world"},
		{"zero_width", "hi", 0, "hi"},
		{"negative", "hi", -1, "hi"},
		{"empty_input", "", 3, "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short", "hi", 10, "hi"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hell…"},
		{"width_one", "hello", 1, "h"},
		{"zero", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestOverlayAtReplacesMiddleOfBase(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
		"dddddddddd",
	}, "\n")
	got := overlayAt(base, "XX\nYY", 4, 1, 10, 4)
	lines := splitLines(got)
	if lines[0] != "aaaaaaaaaa" {
		t.Fatalf("line 0 touched: %q", lines[0])
	}
	if lines[1] != "bbbbXXbbbb" {
		t.Fatalf("line 1 = %q", lines[1])
	}
	if lines[2] != "ccccYYcccc" {
		t.Fatalf("line 2 = %q", lines[2])
	}
	if lines[3] != "dddddddddd" {
		t.Fatalf("line 3 touched: %q", lines[3])
	}
}

func TestOverlayAtClipsOutOfRangeRows(t *testing.T) {
	base := "aaaa\nbbbb"
	got := overlayAt(base, "X\nY\nZ", 0, 1, 4, 2)
	lines := splitLines(got)
	if len(lines) != 2 {
		t.Fatalf("row count changed: %d", len(lines))
	}
	if lines[0] != "aaaa" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "X") {
		t.Fatalf("line 1 = %q", lines[1])
	}
}
