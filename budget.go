package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bloomfi/bloomfi/internal/store"
)

// ---------------------------------------------------------------------------
// Budget periods
// ---------------------------------------------------------------------------

const (
	budgetMonthly = iota
	budgetWeekly
	budgetYearly
	budgetPeriodCount
)

var budgetPeriodLabels = []string{"Monthly", "Weekly", "Yearly"}

// budgetWindow returns the inclusive start and exclusive end of the period
// that is offset periods away from the one containing now. Weeks start on
// Sunday, matching the calendar grid.
func budgetWindow(period, offset int, now time.Time) (time.Time, time.Time) {
	today := normalizeDate(now)
	switch period {
	case budgetWeekly:
		start := today.AddDate(0, 0, -int(today.Weekday())+7*offset)
		return start, start.AddDate(0, 0, 7)
	case budgetYearly:
		start := time.Date(today.Year()+offset, time.January, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local)
		start = start.AddDate(0, offset, 0)
		return start, start.AddDate(0, 1, 0)
	}
}

// budgetWindowLabel names the selected period for the tab header.
func budgetWindowLabel(period, offset int, now time.Time) string {
	start, end := budgetWindow(period, offset, now)
	switch period {
	case budgetWeekly:
		var rel string
		switch {
		case offset == 0:
			rel = "Current Week"
		case offset == -1:
			rel = "Last Week"
		case offset == 1:
			rel = "Next Week"
		case offset < 0:
			rel = fmt.Sprintf("%d Weeks Ago", -offset)
		default:
			rel = fmt.Sprintf("%d Weeks Ahead", offset)
		}
		last := end.AddDate(0, 0, -1)
		return fmt.Sprintf("%s · %s – %s", rel, start.Format("Jan 2"), last.Format("Jan 2"))
	case budgetYearly:
		return start.Format("2006")
	default:
		return start.Format("January 2006")
	}
}

// periodLimit scales a monthly allocation onto the selected period.
func periodLimit(monthly float64, period int) float64 {
	switch period {
	case budgetWeekly:
		return monthly * 12 / 52
	case budgetYearly:
		return monthly * 12
	}
	return monthly
}

// ---------------------------------------------------------------------------
// Spending status
// ---------------------------------------------------------------------------

const (
	budgetUnder = iota
	budgetOnTrack
	budgetOver
)

var budgetStatusLabels = []string{"Under Budget", "On Track", "Over Budget"}

// spendingStatus classifies spend against the allocation: 100% of the budget
// or more is over, 80% or more is on track, anything less is under. Spend
// against a zero allocation is always over.
func spendingStatus(spent, budgeted float64) int {
	if budgeted <= 0 {
		if spent > 0 {
			return budgetOver
		}
		return budgetUnder
	}
	used := spent / budgeted * 100
	switch {
	case used >= 100:
		return budgetOver
	case used >= 80:
		return budgetOnTrack
	default:
		return budgetUnder
	}
}

// ---------------------------------------------------------------------------
// Budget lines
// ---------------------------------------------------------------------------

// budgetLine is one category row of the budget table. budgeted is already
// scaled to the selected period.
type budgetLine struct {
	category  string
	key       string // lower-cased lookup key into the budgets map
	budgeted  float64
	spent     float64
	remaining float64
	status    int
}

// buildBudgetLines joins per-category expense totals inside [start, end)
// with the monthly allocations. Categories appear when they have either an
// allocation or spend; rows sort by spend descending with the category name
// breaking ties, like the dashboard chart.
func buildBudgetLines(rows []transaction, monthlyBudgets map[string]float64, period int, start, end time.Time) []budgetLine {
	display := make(map[string]string, len(store.CanonicalCategories))
	for _, canon := range store.CanonicalCategories {
		display[strings.ToLower(canon)] = canon
	}

	spent := map[string]float64{}
	for _, r := range rows {
		if r.amount >= 0 {
			continue
		}
		if r.date.Before(start) || !r.date.Before(end) {
			continue
		}
		key := strings.ToLower(r.category)
		spent[key] += -r.amount
		if _, ok := display[key]; !ok {
			display[key] = r.category
		}
	}

	keys := make(map[string]bool, len(spent)+len(monthlyBudgets))
	for k := range spent {
		keys[k] = true
	}
	for k := range monthlyBudgets {
		keys[k] = true
	}

	lines := make([]budgetLine, 0, len(keys))
	for key := range keys {
		name := display[key]
		if name == "" {
			name = key
		}
		budgeted := periodLimit(monthlyBudgets[key], period)
		lines = append(lines, budgetLine{
			category:  name,
			key:       key,
			budgeted:  budgeted,
			spent:     spent[key],
			remaining: budgeted - spent[key],
			status:    spendingStatus(spent[key], budgeted),
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].spent != lines[j].spent {
			return lines[i].spent > lines[j].spent
		}
		return lines[i].category < lines[j].category
	})
	return lines
}

// budgetTotals sums a line set for the header row.
func budgetTotals(lines []budgetLine) (budgeted, spent float64) {
	for _, l := range lines {
		budgeted += l.budgeted
		spent += l.spent
	}
	return budgeted, spent
}
