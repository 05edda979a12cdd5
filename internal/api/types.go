package api

// Wire types for the BloomFi backend. Field names follow the backend's
// column naming, so several of these look unidiomatic on purpose. Optional
// columns decode to zero values when the backend omits them.

// Account is one row of GET /api/accounts.
type Account struct {
	AccountNumber        int     `json:"accountnumber"`
	AccountType          string  `json:"account_type"`
	AccountDisplayNumber string  `json:"account_display_number"`
	Balance              float64 `json:"balance"`
}

// Transaction is one row of GET /api/transactions.
type Transaction struct {
	TransactionID   int     `json:"transaction_id"`
	AccountNumber   int     `json:"accountnumber"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	TransactionDate string  `json:"transaction_date"`
}

// Session is returned by the auth endpoints.
type Session struct {
	Token       string `json:"access_token"`
	DisplayName string `json:"display_name"`
}
