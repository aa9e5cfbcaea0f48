package models

import "github.com/shopspring/decimal"

// RateResponse reports the MWK per USDT rate in force
// swagger:model RateResponse
type RateResponse struct {
	OK bool `json:"ok"`

	// example: 1770
	Rate decimal.Decimal `json:"rate"`
}

// SetRateRequest represents the JSON body for configuring the MWK per USDT rate
// swagger:model SetRateRequest
type SetRateRequest struct {
	// required: true
	// example: 1785.5
	Rate decimal.Decimal `json:"rate"`
}
