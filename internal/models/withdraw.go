package models

import "github.com/shopspring/decimal"

// WithdrawRequest represents the JSON body for withdrawing MWK
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	ID string `json:"id,omitempty"`

	// Amount in whole MWK
	// required: true
	// example: 500
	Amount decimal.Decimal `json:"amount"`

	// Withdrawal channel
	// required: true
	// example: bank
	Method string `json:"method" validate:"required"`

	// Payout account or phone number, at least 5 characters
	// required: true
	// example: 12345
	Account string `json:"account" validate:"required,min=5"`

	PIN string `json:"pin,omitempty"`
}
