package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/metrics"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/sbilibin2017/cryptex-wallet/internal/projector"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
)

// GetWallet returns the cached snapshot. A missing, corrupt or stale snapshot
// is rebuilt from the log and persisted first.
func (s *WalletService) GetWallet(ctx context.Context) (models.Wallet, error) {
	txs, version, err := s.ledger.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load transactions", "error", err)
		return models.Wallet{}, storageError("load transactions", err)
	}
	return s.snapshot(ctx, txs, version)
}

// Recompute rebuilds the snapshot from the log regardless of the cache and
// tells other contexts to re-read it.
func (s *WalletService) Recompute(ctx context.Context) (models.Wallet, error) {
	txs, version, err := s.ledger.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load transactions", "error", err)
		return models.Wallet{}, storageError("load transactions", err)
	}

	w, err := s.rebuild(ctx, txs, version, "forced")
	if err != nil {
		return models.Wallet{}, err
	}

	s.publish(ctx, models.EventRecompute, nil)
	return w, nil
}

// snapshot serves the cache when it was built from the log at version.
func (s *WalletService) snapshot(ctx context.Context, txs []models.Transaction, version int64) (models.Wallet, error) {
	cached, err := s.cache.Get(ctx)

	var cause string
	switch {
	case err == nil && cached.LogVersion == version:
		return cached.Wallet, nil
	case err == nil:
		cause = "stale"
	case errors.Is(err, repositories.ErrNotFound):
		cause = "missing"
	case errors.Is(err, ErrCorruptSnapshot):
		cause = "corrupt"
	default:
		logger.Log.Errorw("failed to read wallet snapshot", "error", err)
		return models.Wallet{}, storageError("read snapshot", err)
	}

	return s.rebuild(ctx, txs, version, cause)
}

func (s *WalletService) rebuild(ctx context.Context, txs []models.Transaction, version int64, cause string) (models.Wallet, error) {
	w := s.project(txs, s.CurrentRate(ctx))
	metrics.Recomputes.WithLabelValues(cause).Inc()

	if err := s.cache.Save(ctx, repositories.CachedWallet{Wallet: w, LogVersion: version}); err != nil {
		logger.Log.Errorw("failed to save wallet snapshot", "cause", cause, "error", err)
		return models.Wallet{}, storageError("save snapshot", err)
	}

	logger.Log.Infow("wallet snapshot rebuilt",
		"cause", cause,
		"transactions", len(txs),
		"version", version,
		"usdt", w.USDT,
		"mwk", w.MWK,
	)
	return w, nil
}

// project settles the log into a wallet. Negative sums are floored at zero
// and oversized ones capped, both logged since they point at a bad record.
func (s *WalletService) project(txs []models.Transaction, rate decimal.Decimal) models.Wallet {
	totals := projector.Fold(txs, rate)
	if totals.Negative() {
		logger.Log.Warnw("projected balance below zero, flooring at zero",
			"usdt", totals.USDT,
			"mwk", totals.MWK,
		)
	}
	if totals.OutOfRange() {
		logger.Log.Warnw("projected MWK balance exceeds the wallet limit, capping",
			"mwk", totals.MWK,
			"limit", projector.MaxMWK,
		)
	}
	return projector.Settle(totals)
}
