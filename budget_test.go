package main

import (
	"testing"
	"time"
)

func TestBudgetWindowMonthly(t *testing.T) {
	start, end := budgetWindow(budgetMonthly, 0, testNow())
	if !start.Equal(day(t, 2025, time.June, 1)) || !end.Equal(day(t, 2025, time.July, 1)) {
		t.Fatalf("window = %v..%v", start, end)
	}
	start, end = budgetWindow(budgetMonthly, -1, testNow())
	if !start.Equal(day(t, 2025, time.May, 1)) || !end.Equal(day(t, 2025, time.June, 1)) {
		t.Fatalf("offset -1 window = %v..%v", start, end)
	}
}

func TestBudgetWindowWeeklyStartsSunday(t *testing.T) {
	// June 15 2025 is a Sunday, so the current week starts on testNow itself.
	start, end := budgetWindow(budgetWeekly, 0, testNow())
	if !start.Equal(day(t, 2025, time.June, 15)) || !end.Equal(day(t, 2025, time.June, 22)) {
		t.Fatalf("window = %v..%v", start, end)
	}
	// A mid-week clock still snaps back to Sunday.
	wed := time.Date(2025, time.June, 18, 9, 30, 0, 0, time.Local)
	start, _ = budgetWindow(budgetWeekly, 0, wed)
	if !start.Equal(day(t, 2025, time.June, 15)) {
		t.Fatalf("mid-week start = %v", start)
	}
	start, _ = budgetWindow(budgetWeekly, -1, testNow())
	if !start.Equal(day(t, 2025, time.June, 8)) {
		t.Fatalf("last week start = %v", start)
	}
}

func TestBudgetWindowYearly(t *testing.T) {
	start, end := budgetWindow(budgetYearly, 0, testNow())
	if !start.Equal(day(t, 2025, time.January, 1)) || !end.Equal(day(t, 2026, time.January, 1)) {
		t.Fatalf("window = %v..%v", start, end)
	}
	start, _ = budgetWindow(budgetYearly, 1, testNow())
	if start.Year() != 2026 {
		t.Fatalf("next year start = %v", start)
	}
}

func TestBudgetWindowLabel(t *testing.T) {
	if got := budgetWindowLabel(budgetMonthly, 0, testNow()); got != "June 2025" {
		t.Fatalf("monthly label = %q", got)
	}
	if got := budgetWindowLabel(budgetMonthly, -1, testNow()); got != "May 2025" {
		t.Fatalf("monthly offset label = %q", got)
	}
	if got := budgetWindowLabel(budgetWeekly, 0, testNow()); got != "Current Week · Jun 15 – Jun 21" {
		t.Fatalf("weekly label = %q", got)
	}
	if got := budgetWindowLabel(budgetWeekly, -3, testNow()); got != "3 Weeks Ago · May 25 – May 31" {
		t.Fatalf("weekly offset label = %q", got)
	}
	if got := budgetWindowLabel(budgetYearly, 0, testNow()); got != "2025" {
		t.Fatalf("yearly label = %q", got)
	}
}

func TestPeriodLimitScaling(t *testing.T) {
	if got := periodLimit(520, budgetMonthly); got != 520 {
		t.Fatalf("monthly = %v", got)
	}
	if got := periodLimit(520, budgetWeekly); !almostEqual(got, 120) {
		t.Fatalf("weekly = %v", got)
	}
	if got := periodLimit(520, budgetYearly); got != 6240 {
		t.Fatalf("yearly = %v", got)
	}
}

func TestSpendingStatusThresholds(t *testing.T) {
	cases := []struct {
		spent, budgeted float64
		want            int
	}{
		{0, 100, budgetUnder},
		{79.99, 100, budgetUnder},
		{80, 100, budgetOnTrack},
		{99.99, 100, budgetOnTrack},
		{100, 100, budgetOver},
		{150, 100, budgetOver},
		{0, 0, budgetUnder},
		{5, 0, budgetOver},
	}
	for _, tc := range cases {
		if got := spendingStatus(tc.spent, tc.budgeted); got != tc.want {
			t.Fatalf("spendingStatus(%v, %v) = %d, want %d", tc.spent, tc.budgeted, got, tc.want)
		}
	}
}

func TestBuildBudgetLines(t *testing.T) {
	rows := []transaction{
		{id: "1", amount: -90, date: day(t, 2025, time.June, 10), category: "Groceries"},
		{id: "2", amount: -30, date: day(t, 2025, time.June, 12), category: "Groceries"},
		{id: "3", amount: -400, date: day(t, 2025, time.May, 20), category: "Groceries"}, // outside window
		{id: "4", amount: 2500, date: day(t, 2025, time.June, 1), category: "Income"},    // credits never count
		{id: "5", amount: -25, date: day(t, 2025, time.June, 5), category: "Vet"},        // no allocation
	}
	budgets := map[string]float64{"groceries": 300, "shopping": 150}
	start, end := budgetWindow(budgetMonthly, 0, testNow())

	lines := buildBudgetLines(rows, budgets, budgetMonthly, start, end)
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %+v", len(lines), lines)
	}

	// Sorted by spend descending: Groceries 120, Vet 25, Shopping 0.
	if lines[0].category != "Groceries" || !almostEqual(lines[0].spent, 120) {
		t.Fatalf("line 0 = %+v", lines[0])
	}
	if lines[0].budgeted != 300 || !almostEqual(lines[0].remaining, 180) || lines[0].status != budgetUnder {
		t.Fatalf("groceries line = %+v", lines[0])
	}
	if lines[1].category != "Vet" || lines[1].status != budgetOver {
		t.Fatalf("line 1 = %+v", lines[1])
	}
	if lines[2].category != "Shopping" || lines[2].spent != 0 || lines[2].budgeted != 150 {
		t.Fatalf("line 2 = %+v", lines[2])
	}

	totalBudgeted, totalSpent := budgetTotals(lines)
	if totalBudgeted != 450 || !almostEqual(totalSpent, 145) {
		t.Fatalf("totals = %v, %v", totalBudgeted, totalSpent)
	}
}

func TestBuildBudgetLinesScalesToPeriod(t *testing.T) {
	rows := []transaction{
		{id: "1", amount: -50, date: day(t, 2025, time.June, 16), category: "Groceries"},
	}
	budgets := map[string]float64{"groceries": 260}
	start, end := budgetWindow(budgetWeekly, 0, testNow())

	lines := buildBudgetLines(rows, budgets, budgetWeekly, start, end)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !almostEqual(lines[0].budgeted, 60) { // 260 * 12 / 52
		t.Fatalf("weekly budgeted = %v", lines[0].budgeted)
	}
	if !almostEqual(lines[0].spent, 50) || lines[0].status != budgetOnTrack {
		t.Fatalf("line = %+v", lines[0])
	}
}
