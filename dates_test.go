package main

import (
	"testing"
	"time"
)

func TestNormalizeDateTruncatesToMidnight(t *testing.T) {
	in := time.Date(2025, time.March, 14, 17, 42, 9, 123, time.Local)
	got := normalizeDate(in)
	want := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("normalizeDate(%v) = %v, want %v", in, got, want)
	}
}

func TestDaysAgoCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local)
	got := daysAgo(30, now)
	want := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("daysAgo(30) = %v, want %v", got, want)
	}
}

func TestParseTxDateISO(t *testing.T) {
	got, ok := parseTxDate("2025-06-01")
	if !ok {
		t.Fatal("expected ISO date to parse")
	}
	want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseTxDate = %v, want %v", got, want)
	}
}

func TestParseTxDateTimestampCollapsesToMidnight(t *testing.T) {
	got, ok := parseTxDate("2025-06-01T15:04:05Z")
	if !ok {
		t.Fatal("expected RFC3339 timestamp to parse")
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestParseTxDateGarbage(t *testing.T) {
	if _, ok := parseTxDate("not-a-date"); ok {
		t.Fatal("expected parse failure for garbage input")
	}
}

func TestFormatDisplayDate(t *testing.T) {
	d := time.Date(2025, time.January, 9, 0, 0, 0, 0, time.Local)
	if got := formatDisplayDate(d); got != "Jan 9, 2025" {
		t.Fatalf("formatDisplayDate = %q", got)
	}
}
