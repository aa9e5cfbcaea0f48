package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
)

// CurrentRate returns the stored MWK per USDT rate, or the configured
// fallback when it is missing, unreadable or not positive.
func (s *WalletService) CurrentRate(ctx context.Context) decimal.Decimal {
	rate, err := s.rates.GetRate(ctx)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return s.cfg.FallbackRate
	case err != nil:
		logger.Log.Warnw("stored rate unusable, using fallback", "fallback", s.cfg.FallbackRate, "error", err)
		return s.cfg.FallbackRate
	case !rate.IsPositive():
		logger.Log.Warnw("stored rate not positive, using fallback", "rate", rate, "fallback", s.cfg.FallbackRate)
		return s.cfg.FallbackRate
	}
	return rate
}

// SetRate stores a new MWK per USDT rate. Existing transactions keep the
// value they were priced at.
func (s *WalletService) SetRate(ctx context.Context, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return ErrInvalidRate
	}
	if err := s.rates.SetRate(ctx, rate); err != nil {
		logger.Log.Errorw("failed to save rate", "rate", rate, "error", err)
		return storageError("save rate", err)
	}
	logger.Log.Infow("rate updated", "rate", rate)
	return nil
}
