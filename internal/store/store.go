// Package store is the local sqlite data source used when the app runs
// against mock data instead of the backend. It serves the same shapes the
// backend would.
package store

import (
	"context"
	"database/sql"
	"time"
)

const dateISO = "2006-01-02"

// Store reads accounts and transactions from sqlite.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store { return &Store{db: db} }

// Accounts lists every account ordered by account number.
func (s *Store) Accounts(ctx context.Context) ([]Account, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT accountnumber, account_type, account_display_number, balance
	FROM accounts ORDER BY accountnumber`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.AccountNumber, &a.AccountType, &a.DisplayNumber, &a.Balance); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Transactions lists every transaction, oldest first.
func (s *Store) Transactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT transaction_id, external_id, accountnumber, transaction_type,
	       amount, description, COALESCE(category, ''), transaction_date
	FROM transactions ORDER BY transaction_date, transaction_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		var rawDate string
		if err := rows.Scan(&t.TransactionID, &t.ExternalID, &t.AccountNumber,
			&t.Type, &t.Amount, &t.Description, &t.Category, &rawDate); err != nil {
			return nil, err
		}
		if parsed, err := time.ParseInLocation(dateISO, rawDate, time.Local); err == nil {
			t.Date = parsed
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// InsertAccount adds an account and returns its assigned number.
func (s *Store) InsertAccount(ctx context.Context, a Account) (int, error) {
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO accounts(account_type, account_display_number, balance)
	VALUES(?, ?, ?)`, a.AccountType, a.DisplayNumber, a.Balance)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// InsertTransaction adds a transaction. The category is normalized against
// the canonical category set before it is stored.
func (s *Store) InsertTransaction(ctx context.Context, t Transaction) error {
	category := sql.NullString{}
	if c := NormalizeCategory(t.Category); c != "" {
		category = sql.NullString{String: c, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO transactions(external_id, accountnumber, transaction_type,
	                         amount, description, category, transaction_date)
	VALUES(?, ?, ?, ?, ?, ?, ?)`,
		t.ExternalID, t.AccountNumber, t.Type, t.Amount, t.Description,
		category, t.Date.Format(dateISO))
	return err
}

// Empty reports whether the store holds no accounts yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
