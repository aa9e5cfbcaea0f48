package models

import "github.com/shopspring/decimal"

// Amounts are stored and served as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Wallet is the balance snapshot derived from the transaction log.
// swagger:model Wallet
type Wallet struct {
	// USDT balance, six decimal places at most
	// example: 5
	USDT decimal.Decimal `json:"usdt"`

	// MWK balance in whole kwacha
	// example: 1150
	MWK int64 `json:"mwk"`
}

// Equal reports whether both balances match.
func (w Wallet) Equal(other Wallet) bool {
	return w.MWK == other.MWK && w.USDT.Equal(other.USDT)
}
