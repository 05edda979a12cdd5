package store

import "time"

// Account mirrors one row of the accounts table.
type Account struct {
	AccountNumber int
	AccountType   string
	DisplayNumber string
	Balance       float64
}

// Transaction mirrors one row of the transactions table.
type Transaction struct {
	TransactionID int
	ExternalID    string
	AccountNumber int
	Type          string
	Amount        float64
	Description   string
	Category      string
	Date          time.Time
}
