package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger entry.
type TransactionType string

// Supported transaction types.
const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypeBuy      TransactionType = "buy"
	TypeSell     TransactionType = "sell"
)

// TransactionStatus is the settlement state of a ledger entry.
// Only completed entries contribute to balances.
type TransactionStatus string

// Supported transaction statuses.
const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Direction tells whether value flowed into or out of the wallet. Informational only.
type Direction string

// Supported directions.
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Transaction is an immutable ledger record.
// swagger:model Transaction
type Transaction struct {
	ID            string            `json:"id"`                  // Unique identifier, tx_<ULID> unless supplied by the caller
	Date          time.Time         `json:"date"`                // Set when the record is appended
	Type          TransactionType   `json:"type"`                // deposit, withdraw, buy or sell
	Status        TransactionStatus `json:"status"`              // completed, pending or failed
	Direction     Direction         `json:"direction,omitempty"` // in or out
	Amount        decimal.Decimal   `json:"amount"`              // USDT for buy/sell, MWK for deposit/withdraw
	TotalMWK      *int64            `json:"totalMWK,omitempty"`  // MWK value fixed at transaction time
	Reference     string            `json:"reference"`           // Payment reference or payout account
	PaymentMethod string            `json:"paymentMethod"`       // Deposit or withdrawal channel
	Note          string            `json:"note"`                // Free text
}

// Completed reports whether the record contributes to balances.
func (t Transaction) Completed() bool {
	return t.Status == StatusCompleted
}
