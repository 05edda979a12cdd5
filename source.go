package main

import (
	"context"
	"strconv"
	"time"

	"github.com/bloomfi/bloomfi/internal/api"
	"github.com/bloomfi/bloomfi/internal/store"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "BloomFi"

type account struct {
	id      string
	name    string // account type, e.g. "Checking"
	number  string // masked display number
	balance float64
}

// transaction is one immutable row of the page-level transaction list.
// Filtered views reference these values; nothing ever mutates them in place.
type transaction struct {
	id          string
	description string
	date        time.Time // normalized to local midnight; zero when unparsable
	amount      float64
	accountID   string
	category    string
}

// ---------------------------------------------------------------------------
// Data sources
// ---------------------------------------------------------------------------

// dataSource is what the UI loads from: the REST backend or the local mock
// store, chosen at startup. Both return the same shapes.
type dataSource interface {
	Accounts(ctx context.Context) ([]account, error)
	Transactions(ctx context.Context) ([]transaction, error)
}

// apiSource adapts the backend client. Malformed rows degrade rather than
// fail the whole fetch: a bad date becomes the zero time, missing text
// stays empty, missing amounts stay zero.
type apiSource struct {
	client *api.Client
}

func (s apiSource) Accounts(ctx context.Context) ([]account, error) {
	rows, err := s.client.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]account, 0, len(rows))
	for _, r := range rows {
		out = append(out, account{
			id:      strconv.Itoa(r.AccountNumber),
			name:    r.AccountType,
			number:  r.AccountDisplayNumber,
			balance: r.Balance,
		})
	}
	return out, nil
}

func (s apiSource) Transactions(ctx context.Context) ([]transaction, error) {
	rows, err := s.client.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]transaction, 0, len(rows))
	for _, r := range rows {
		date, _ := parseTxDate(r.TransactionDate)
		out = append(out, transaction{
			id:          strconv.Itoa(r.TransactionID),
			description: r.Description,
			date:        date,
			amount:      r.Amount,
			accountID:   strconv.Itoa(r.AccountNumber),
			category:    r.Category,
		})
	}
	return out, nil
}

// mockSource adapts the sqlite store.
type mockSource struct {
	store *store.Store
}

func (s mockSource) Accounts(ctx context.Context) ([]account, error) {
	rows, err := s.store.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]account, 0, len(rows))
	for _, r := range rows {
		out = append(out, account{
			id:      strconv.Itoa(r.AccountNumber),
			name:    r.AccountType,
			number:  r.DisplayNumber,
			balance: r.Balance,
		})
	}
	return out, nil
}

func (s mockSource) Transactions(ctx context.Context) ([]transaction, error) {
	rows, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]transaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, transaction{
			id:          r.ExternalID,
			description: r.Description,
			date:        normalizeDate(r.Date),
			amount:      r.Amount,
			accountID:   strconv.Itoa(r.AccountNumber),
			category:    r.Category,
		})
	}
	return out, nil
}
