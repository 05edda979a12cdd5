package main

import "sort"

// ---------------------------------------------------------------------------
// Category spending aggregation
// ---------------------------------------------------------------------------

const uncategorized = "Other"

// categoryBucket is one bar of the spending chart.
type categoryBucket struct {
	name    string
	amount  float64 // sum of expense magnitudes
	percent float64 // share of total expenses
	barPct  float64 // width relative to the largest bucket, 0-100
}

// aggregateSpending groups expense magnitudes by category. Only negative
// amounts count; positive and zero rows are ignored. Buckets come back
// sorted by amount descending, each carrying its share of total expenses and
// a bar width scaled against the largest bucket.
func aggregateSpending(rows []transaction) []categoryBucket {
	totals := make(map[string]float64)
	totalExpenses := 0.0
	for _, r := range rows {
		if r.amount >= 0 {
			continue
		}
		name := r.category
		if name == "" {
			name = uncategorized
		}
		amount := -r.amount
		totals[name] += amount
		totalExpenses += amount
	}
	if len(totals) == 0 {
		return nil
	}

	buckets := make([]categoryBucket, 0, len(totals))
	for name, amount := range totals {
		buckets = append(buckets, categoryBucket{name: name, amount: amount})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].amount != buckets[j].amount {
			return buckets[i].amount > buckets[j].amount
		}
		return buckets[i].name < buckets[j].name
	})

	maxAmount := buckets[0].amount
	for i := range buckets {
		buckets[i].percent = buckets[i].amount / totalExpenses * 100
		buckets[i].barPct = buckets[i].amount / maxAmount * 100
	}
	return buckets
}

// summaryTotals are the headline numbers above the transaction table.
type summaryTotals struct {
	income   float64
	expenses float64 // positive magnitude
	net      float64
}

func summarize(rows []transaction) summaryTotals {
	var s summaryTotals
	for _, r := range rows {
		s.net += r.amount
		if r.amount > 0 {
			s.income += r.amount
		} else {
			s.expenses -= r.amount
		}
	}
	return s
}
