// Package format renders amounts for user-facing messages.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// MWK renders whole kwacha with thousands separators, e.g. "MK 8,850".
func MWK(amount int64) string {
	return printer.Sprintf("MK %d", amount)
}

// USDT renders a USDT amount with two decimals, e.g. "2.50 USDT".
func USDT(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("%.2f USDT", f)
}
