package main

import "time"

// ---------------------------------------------------------------------------
// Date helpers
// ---------------------------------------------------------------------------

// Transactions arrive with timestamps, but every comparison in the app is
// date-granular, so dates are truncated to local midnight before use.

const dateISOFormat = "2006-01-02"

// normalizeDate truncates t to midnight in local time.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// formatDisplayDate renders a date as "Jan 2, 2006".
func formatDisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// daysAgo returns today's midnight shifted back n days.
func daysAgo(n int, now time.Time) time.Time {
	return normalizeDate(now).AddDate(0, 0, -n)
}

// parseTxDate parses a backend transaction date. Transaction dates come as
// either bare ISO dates or full timestamps; both collapse to local midnight.
func parseTxDate(raw string) (time.Time, bool) {
	if parsed, err := time.ParseInLocation(dateISOFormat, raw, time.Local); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return normalizeDate(parsed.Local()), true
	}
	return time.Time{}, false
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
