package main

import (
	"testing"
	"time"
)

func day(t *testing.T, y int, m time.Month, d int) time.Time {
	t.Helper()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func txnIDs(rows []transaction) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.id
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatPtr(v float64) *float64 { return &v }

func sampleRows(t *testing.T) []transaction {
	t.Helper()
	return []transaction{
		{id: "1", description: "Salary", date: day(t, 2025, time.June, 1), amount: 2500, accountID: "100", category: "Income"},
		{id: "2", description: "Coffee Shop", date: day(t, 2025, time.June, 3), amount: -4.50, accountID: "100", category: "Food & Drinks"},
		{id: "3", description: "Grocery Store", date: day(t, 2025, time.June, 3), amount: -82.10, accountID: "200", category: "Groceries"},
		{id: "4", description: "Fee reversal", date: day(t, 2025, time.June, 4), amount: 0, accountID: "100"},
		{id: "5", description: "Rent", date: day(t, 2025, time.June, 5), amount: -1200, accountID: "200", category: "Bills & Utilities"},
	}
}

func TestApplyFiltersDateBoundsInclusive(t *testing.T) {
	rows := sampleRows(t)
	c := filterCriteria{
		startDate: day(t, 2025, time.June, 3),
		endDate:   day(t, 2025, time.June, 4),
		account:   accountAll,
	}
	got := txnIDs(applyFilters(rows, c))
	if !equalStrings(got, []string{"2", "3", "4"}) {
		t.Fatalf("inclusive date window got %v", got)
	}
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	rows := sampleRows(t)
	c := filterCriteria{account: accountAll}
	got := txnIDs(applyFilters(rows, c))
	if !equalStrings(got, []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("expected source order preserved, got %v", got)
	}
}

func TestApplyFiltersAccount(t *testing.T) {
	rows := sampleRows(t)
	c := filterCriteria{account: "200"}
	got := txnIDs(applyFilters(rows, c))
	if !equalStrings(got, []string{"3", "5"}) {
		t.Fatalf("account filter got %v", got)
	}
}

func TestZeroAmountMatchesNeitherType(t *testing.T) {
	rows := sampleRows(t)

	income := applyFilters(rows, filterCriteria{account: accountAll, txType: txTypeIncome})
	for _, r := range income {
		if r.amount == 0 {
			t.Fatalf("zero-amount row %s matched income", r.id)
		}
	}

	expense := applyFilters(rows, filterCriteria{account: accountAll, txType: txTypeExpense})
	for _, r := range expense {
		if r.amount == 0 {
			t.Fatalf("zero-amount row %s matched expense", r.id)
		}
	}

	all := applyFilters(rows, filterCriteria{account: accountAll, txType: txTypeAll})
	if !equalStrings(txnIDs(all), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("type All should keep zero-amount rows, got %v", txnIDs(all))
	}
}

func TestAmountBoundsUseMagnitude(t *testing.T) {
	rows := sampleRows(t)
	c := filterCriteria{
		account:   accountAll,
		minAmount: floatPtr(50),
		maxAmount: floatPtr(3000),
	}
	got := txnIDs(applyFilters(rows, c))
	// 2500 income and the 82.10 / 1200 expenses all fall in [50, 3000] by
	// magnitude; the 4.50 coffee and the zero row do not.
	if !equalStrings(got, []string{"1", "3", "5"}) {
		t.Fatalf("magnitude bounds got %v", got)
	}
}

func TestSearchTermMatchesDescriptionCaseInsensitive(t *testing.T) {
	rows := sampleRows(t)
	c := filterCriteria{account: accountAll, searchTerm: "coffee"}
	got := txnIDs(applyFilters(rows, c))
	if !equalStrings(got, []string{"2"}) {
		t.Fatalf("search got %v", got)
	}
}

func TestSortForDisplayNewestFirstStable(t *testing.T) {
	rows := sampleRows(t)
	got := txnIDs(sortForDisplay(rows))
	// Rows 2 and 3 share a date and must keep their relative order.
	if !equalStrings(got, []string{"5", "4", "2", "3", "1"}) {
		t.Fatalf("display sort got %v", got)
	}
}

func TestSortForDisplayDoesNotMutateInput(t *testing.T) {
	rows := sampleRows(t)
	_ = sortForDisplay(rows)
	if !equalStrings(txnIDs(rows), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("input mutated: %v", txnIDs(rows))
	}
}

func TestDefaultCriteriaThirtyDayWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.Local)
	c := defaultCriteria(now)
	if !c.startDate.Equal(day(t, 2025, time.May, 16)) {
		t.Fatalf("start = %v", c.startDate)
	}
	if !c.endDate.Equal(day(t, 2025, time.June, 15)) {
		t.Fatalf("end = %v", c.endDate)
	}
	if c.account != accountAll || c.txType != txTypeAll {
		t.Fatal("expected account and type defaults to be all")
	}
	if c.minAmount != nil || c.maxAmount != nil || c.searchTerm != "" {
		t.Fatal("expected no amount bounds or search term")
	}
}

func TestActiveFilterCount(t *testing.T) {
	if n := activeFilterCount(filterCriteria{account: accountAll}); n != 0 {
		t.Fatalf("empty criteria count = %d", n)
	}
	c := filterCriteria{
		startDate:  day(t, 2025, time.June, 1),
		account:    "100",
		txType:     txTypeExpense,
		minAmount:  floatPtr(5),
		searchTerm: "rent",
	}
	if n := activeFilterCount(c); n != 5 {
		t.Fatalf("full criteria count = %d", n)
	}
}

// ---------------------------------------------------------------------------
// Modal presets
// ---------------------------------------------------------------------------

func TestPresetStartYearToDate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.Local)
	start, ok := presetStart(presetYearToDate, now)
	if !ok {
		t.Fatal("expected a cutoff for year to date")
	}
	if !start.Equal(day(t, 2025, time.January, 1)) {
		t.Fatalf("year-to-date start = %v", start)
	}
}

func TestFilterByPresetAllTimeKeepsEverything(t *testing.T) {
	rows := sampleRows(t)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	got := filterByPreset(rows, presetAllTime, now)
	if len(got) != len(rows) {
		t.Fatalf("all time kept %d of %d", len(got), len(rows))
	}
}

func TestFilterByPresetCutoffInclusive(t *testing.T) {
	now := time.Date(2025, time.July, 3, 12, 0, 0, 0, time.Local)
	rows := sampleRows(t)
	// 30 days before July 3 is June 3; rows on June 3 stay.
	got := txnIDs(filterByPreset(rows, presetLast30, now))
	if !equalStrings(got, []string{"2", "3", "4", "5"}) {
		t.Fatalf("last-30 preset got %v", got)
	}
}
