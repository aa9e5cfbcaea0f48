package models

import "github.com/shopspring/decimal"

// BuyRequest represents the JSON body for buying USDT with MWK
// swagger:model BuyRequest
type BuyRequest struct {
	ID string `json:"id,omitempty"`

	// USDT to buy, rounded to 2 decimal places
	// required: true
	// example: 5
	USDT decimal.Decimal `json:"usdt"`

	PIN string `json:"pin,omitempty"`
}

// SellRequest represents the JSON body for selling USDT for MWK
// swagger:model SellRequest
type SellRequest struct {
	ID string `json:"id,omitempty"`

	// USDT to sell, rounded to 2 decimal places
	// required: true
	// example: 2.5
	USDT decimal.Decimal `json:"usdt"`

	PIN string `json:"pin,omitempty"`
}

// OperationResult is returned by every successful wallet mutation
// swagger:model OperationResult
type OperationResult struct {
	// Always true on success
	OK bool `json:"ok"`

	// The appended record, or the stored one when Duplicate is set
	Transaction Transaction `json:"transaction"`

	// Set when the request id was already in the log and nothing was applied
	Duplicate bool `json:"duplicate,omitempty"`

	// MWK charged by a buy
	MWKCost *int64 `json:"mwkCost,omitempty"`

	// MWK credited by a sell
	MWKGain *int64 `json:"mwkGain,omitempty"`

	// Balances after the operation
	Wallet Wallet `json:"wallet"`
}
