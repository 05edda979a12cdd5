package main

import (
	"sort"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Filter criteria
// ---------------------------------------------------------------------------

// Transaction type filter values
const (
	txTypeAll = iota
	txTypeIncome
	txTypeExpense
	txTypeCount
)

var txTypeLabels = []string{"All", "Income", "Expense"}

const accountAll = "all"

// filterCriteria is the committed set of active filter parameters. Zero date
// values mean "no bound"; nil amount pointers mean "no bound". searchTerm is
// lower-cased once when the form is applied, not per comparison.
type filterCriteria struct {
	startDate  time.Time
	endDate    time.Time
	account    string
	txType     int
	minAmount  *float64
	maxAmount  *float64
	searchTerm string
}

// defaultCriteria returns the initial criteria: all accounts, all types, no
// amount bounds, and the last-30-days date window.
func defaultCriteria(now time.Time) filterCriteria {
	return filterCriteria{
		startDate: daysAgo(30, now),
		endDate:   normalizeDate(now),
		account:   accountAll,
		txType:    txTypeAll,
	}
}

func txTypeLabel(t int) string {
	if t >= 0 && t < len(txTypeLabels) {
		return txTypeLabels[t]
	}
	return txTypeLabels[txTypeAll]
}

// ---------------------------------------------------------------------------
// Filter pipeline
// ---------------------------------------------------------------------------

// applyFilters reduces rows to those matching every active clause of c. The
// result preserves the relative order of rows and shares their backing
// values; display sorting is a separate step.
func applyFilters(rows []transaction, c filterCriteria) []transaction {
	out := make([]transaction, 0, len(rows))
	for _, r := range rows {
		if matchesCriteria(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matchesCriteria(t transaction, c filterCriteria) bool {
	if !c.startDate.IsZero() || !c.endDate.IsZero() {
		txDate := normalizeDate(t.date)
		if !c.startDate.IsZero() && txDate.Before(c.startDate) {
			return false
		}
		if !c.endDate.IsZero() && txDate.After(c.endDate) {
			return false
		}
	}

	if c.account != accountAll && t.accountID != c.account {
		return false
	}

	// Zero-amount rows match neither Income nor Expense. That mirrors how
	// the filter has always behaved; do not "fix" it here.
	if c.txType == txTypeIncome && t.amount <= 0 {
		return false
	}
	if c.txType == txTypeExpense && t.amount >= 0 {
		return false
	}

	// Amount bounds compare magnitude so income and expenses are treated
	// symmetrically.
	abs := t.amount
	if abs < 0 {
		abs = -abs
	}
	if c.minAmount != nil && abs < *c.minAmount {
		return false
	}
	if c.maxAmount != nil && abs > *c.maxAmount {
		return false
	}

	if c.searchTerm != "" && !strings.Contains(strings.ToLower(t.description), c.searchTerm) {
		return false
	}

	return true
}

// sortForDisplay orders rows newest first. The sort is stable so rows on the
// same date keep their original relative order.
func sortForDisplay(rows []transaction) []transaction {
	out := append([]transaction(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].date.After(out[j].date)
	})
	return out
}

// ---------------------------------------------------------------------------
// Modal date presets
// ---------------------------------------------------------------------------

// The account transaction modal filters by a named preset cutoff instead of
// the full criteria form.
const (
	presetLast30 = iota
	presetLast90
	presetYearToDate
	presetAllTime
	presetCount
)

var presetLabels = []string{"Last 30 days", "Last 90 days", "Year to date", "All time"}

func presetLabel(p int) string {
	if p >= 0 && p < len(presetLabels) {
		return presetLabels[p]
	}
	return presetLabels[presetLast30]
}

// presetStart returns the inclusive preset cutoff. ok is false for presets
// without a cutoff (all time).
func presetStart(p int, now time.Time) (time.Time, bool) {
	switch p {
	case presetLast30:
		return daysAgo(30, now), true
	case presetLast90:
		return daysAgo(90, now), true
	case presetYearToDate:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local), true
	default:
		return time.Time{}, false
	}
}

// filterByPreset keeps rows on or after the preset cutoff. It re-filters an
// already-fetched list; the modal never refetches on a preset change.
func filterByPreset(rows []transaction, p int, now time.Time) []transaction {
	start, ok := presetStart(p, now)
	if !ok {
		return append([]transaction(nil), rows...)
	}
	out := make([]transaction, 0, len(rows))
	for _, r := range rows {
		if !normalizeDate(r.date).Before(start) {
			out = append(out, r)
		}
	}
	return out
}

// activeFilterCount reports how many non-default clauses c carries, for the
// filter badge in the dashboard header.
func activeFilterCount(c filterCriteria) int {
	n := 0
	if !c.startDate.IsZero() || !c.endDate.IsZero() {
		n++
	}
	if c.account != accountAll {
		n++
	}
	if c.txType != txTypeAll {
		n++
	}
	if c.minAmount != nil || c.maxAmount != nil {
		n++
	}
	if c.searchTerm != "" {
		n++
	}
	return n
}
