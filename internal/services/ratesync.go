package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
)

// Currency codes of the synced pair.
const (
	CurrencyUSDT = "USDT"
	CurrencyMWK  = "MWK"
)

// ExchangeRateReader fetches rates from the external exchanger.
type ExchangeRateReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) // Returns the rate for a currency pair
}

// RateSetter stores a validated rate.
type RateSetter interface {
	SetRate(ctx context.Context, rate decimal.Decimal) error // Stores a new MWK per USDT rate
}

// RateSyncer keeps the stored MWK per USDT rate in line with the exchanger.
type RateSyncer struct {
	reader   ExchangeRateReader
	setter   RateSetter
	interval time.Duration
}

// NewRateSyncer creates a syncer that polls every interval.
func NewRateSyncer(reader ExchangeRateReader, setter RateSetter, interval time.Duration) *RateSyncer {
	return &RateSyncer{
		reader:   reader,
		setter:   setter,
		interval: interval,
	}
}

// SyncOnce fetches the USDT to MWK rate and stores it.
func (r *RateSyncer) SyncOnce(ctx context.Context) error {
	rate, err := r.reader.GetExchangeRateForCurrency(ctx, CurrencyUSDT, CurrencyMWK)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate", "from", CurrencyUSDT, "to", CurrencyMWK, "error", err)
		return err
	}
	if err := r.setter.SetRate(ctx, rate); err != nil {
		logger.Log.Errorw("failed to store exchange rate", "rate", rate, "error", err)
		return err
	}
	return nil
}

// Run syncs immediately and then on every tick until ctx is done.
func (r *RateSyncer) Run(ctx context.Context) {
	_ = r.SyncOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("rate syncer stopped")
			return
		case <-ticker.C:
			_ = r.SyncOnce(ctx)
		}
	}
}
