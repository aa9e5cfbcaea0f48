package models

// WalletResponse represents a successful wallet read
// swagger:model WalletResponse
type WalletResponse struct {
	// Always true on success
	OK bool `json:"ok"`

	// Current balances
	Wallet Wallet `json:"wallet"`
}

// TransactionsResponse represents the transaction log, most recent first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	OK           bool          `json:"ok"`
	Transactions []Transaction `json:"transactions"`
}

// ErrorResponse represents any failed wallet request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	OK bool `json:"ok"`

	// Error message
	// example: insufficient balance: need MK 8,850
	Error string `json:"error"`
}

// TransactionResponse represents a single transaction lookup
// swagger:model TransactionResponse
type TransactionResponse struct {
	OK          bool        `json:"ok"`
	Transaction Transaction `json:"transaction"`
}
