package repositories

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// FxRateRepository keeps the configured MWK per USDT rate under KeyFxRate.
type FxRateRepository struct {
	store KVStore
}

// NewFxRateRepository creates a rate repository over store.
func NewFxRateRepository(store KVStore) *FxRateRepository {
	return &FxRateRepository{store: store}
}

// GetRate parses the stored rate. Both bare and JSON-quoted numbers are accepted.
func (r *FxRateRepository) GetRate(ctx context.Context) (decimal.Decimal, error) {
	raw, _, err := r.store.Get(ctx, KeyFxRate)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(strings.Trim(strings.TrimSpace(raw), `"`))
}

// SetRate stores rate.
func (r *FxRateRepository) SetRate(ctx context.Context, rate decimal.Decimal) error {
	_, err := r.store.Set(ctx, KeyFxRate, rate.String())
	return err
}
