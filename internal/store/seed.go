package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SeedSampleData populates an empty store with the demo accounts and a
// month of transactions. Dates are laid out relative to now so the default
// 30-day dashboard window always has data in it. Already-seeded stores are
// left alone.
func SeedSampleData(ctx context.Context, s *Store, now time.Time) error {
	empty, err := s.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	accounts := []Account{
		{AccountType: "Checking", DisplayNumber: "****3456", Balance: 4890.25},
		{AccountType: "Savings", DisplayNumber: "****7890", Balance: 3000.20},
		{AccountType: "Rewards Card", DisplayNumber: "****5521", Balance: -120.45},
	}
	numbers := make([]int, 0, len(accounts))
	for _, a := range accounts {
		n, err := s.InsertAccount(ctx, a)
		if err != nil {
			return err
		}
		numbers = append(numbers, n)
	}

	samples := []struct {
		daysBack int
		desc     string
		amount   float64
		acct     int // index into numbers
		category string
	}{
		{1, "Coffee Shop", -5.50, 0, "Food & Drinks"},
		{2, "Gas Station", -45.00, 0, "Car & Transportation"},
		{3, "Restaurant", -67.89, 1, "Food & Drinks"},
		{4, "Freelance Payment", 850.00, 1, "Income"},
		{6, "Rewards Credit", 5.00, 2, "Income"},
		{8, "Internet Bill", -79.99, 0, "Bills & Utilities"},
		{10, "Target", -124.50, 1, "Shopping"},
		{12, "Gym Membership", -49.99, 0, "Shopping"},
		{14, "Movie Tickets", -32.00, 0, "Entertainment"},
		{16, "Uber", -18.50, 1, "Car & Transportation"},
		{18, "Whole Foods", -156.30, 0, "Groceries"},
		{20, "Electric Bill", -120.75, 0, "Bills & Utilities"},
		{23, "Paycheck", 2500.00, 0, "Income"},
		{24, "Grocery Store", -89.45, 1, "Groceries"},
		{25, "Streaming Subscription", -12.99, 1, "Entertainment"},
		{27, "Groceris", -86.12, 2, "Groceris"}, // typo on purpose; normalization fixes it
		{28, "Gas", -35.90, 2, "Car & Transportation"},
		{35, "Rent", -1200.00, 0, "Bills & Utilities"},
		{40, "Deposit - Payroll", 1850.00, 0, "Income"},
		{45, "Interest Payment", 6.84, 1, "Income"},
	}

	for _, row := range samples {
		txType := "expense"
		if row.amount > 0 {
			txType = "income"
		}
		t := Transaction{
			ExternalID:    uuid.NewString(),
			AccountNumber: numbers[row.acct],
			Type:          txType,
			Amount:        row.amount,
			Description:   row.desc,
			Category:      row.category,
			Date:          now.AddDate(0, 0, -row.daysBack),
		}
		if err := s.InsertTransaction(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
