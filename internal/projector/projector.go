// Package projector derives wallet balances from the transaction log.
//
// The projection is a pure fold: only completed records count, only sums are
// used, so the result is independent of record order and of wall-clock time.
package projector

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// USDTPlaces is the precision kept for USDT balances.
const USDTPlaces = 6

// MaxMWK is the largest MWK balance a wallet can hold.
var MaxMWK = decimal.NewFromInt(math.MaxInt64)

// Totals are the raw sums of a fold, before clamping and rounding.
type Totals struct {
	USDT decimal.Decimal
	MWK  decimal.Decimal
}

// Negative reports whether either sum fell below zero.
func (t Totals) Negative() bool {
	return t.USDT.IsNegative() || t.MWK.IsNegative()
}

// OutOfRange reports whether the MWK sum does not fit a wallet.
func (t Totals) OutOfRange() bool {
	return t.MWK.Round(0).GreaterThan(MaxMWK)
}

// Fold sums every completed record. rate prices buy and sell records that
// carry no TotalMWK.
func Fold(txs []models.Transaction, rate decimal.Decimal) Totals {
	t := Totals{USDT: decimal.Zero, MWK: decimal.Zero}

	for _, tx := range txs {
		if !tx.Completed() {
			continue
		}
		switch tx.Type {
		case models.TypeDeposit:
			t.MWK = t.MWK.Add(mwkValue(tx, tx.Amount))
		case models.TypeWithdraw:
			t.MWK = t.MWK.Sub(mwkValue(tx, tx.Amount))
		case models.TypeBuy:
			t.USDT = t.USDT.Add(tx.Amount)
			t.MWK = t.MWK.Sub(mwkValue(tx, Price(tx.Amount, rate)))
		case models.TypeSell:
			t.USDT = t.USDT.Sub(tx.Amount)
			t.MWK = t.MWK.Add(mwkValue(tx, Price(tx.Amount, rate)))
		}
	}

	return t
}

// Settle clamps negative sums to zero, caps MWK at MaxMWK and rounds the
// sums into a wallet.
func Settle(t Totals) models.Wallet {
	usdt := t.USDT
	if usdt.IsNegative() {
		usdt = decimal.Zero
	}
	mwk := t.MWK.Round(0)
	if mwk.IsNegative() {
		mwk = decimal.Zero
	}
	if mwk.GreaterThan(MaxMWK) {
		mwk = MaxMWK
	}

	return models.Wallet{
		USDT: usdt.Round(USDTPlaces),
		MWK:  mwk.IntPart(),
	}
}

// Project folds and settles the log in one step.
func Project(txs []models.Transaction, rate decimal.Decimal) models.Wallet {
	return Settle(Fold(txs, rate))
}

// Price converts a USDT amount to whole MWK at rate.
func Price(usdt, rate decimal.Decimal) decimal.Decimal {
	return usdt.Mul(rate).Round(0)
}

func mwkValue(tx models.Transaction, fallback decimal.Decimal) decimal.Decimal {
	if tx.TotalMWK != nil {
		return decimal.NewFromInt(*tx.TotalMWK)
	}
	return fallback
}
