package models

import "github.com/shopspring/decimal"

// DepositRequest represents the JSON body for depositing MWK
// swagger:model DepositRequest
type DepositRequest struct {
	// Optional idempotency key; repeated ids are applied once
	// example: tx_01J9Z8Q6M3ZK5V4W2X7Y8B9C0D
	ID string `json:"id,omitempty"`

	// Amount in whole MWK
	// required: true
	// example: 10000
	Amount decimal.Decimal `json:"amount"`

	// Deposit channel
	// required: true
	// example: bank
	Method string `json:"method" validate:"required"`

	// Payment reference
	// required: true
	// example: R1
	Reference string `json:"reference" validate:"required"`

	// PIN, required once a PIN has been set
	PIN string `json:"pin,omitempty"`
}
