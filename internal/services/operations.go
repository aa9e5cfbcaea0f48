package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/format"
	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/metrics"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
)

// draftFunc builds the record to append from the wallet and rate the caller
// validated against, or rejects the operation.
type draftFunc func(w models.Wallet, rate decimal.Decimal) (models.Transaction, error)

// Deposit credits whole MWK.
func (s *WalletService) Deposit(ctx context.Context, req models.DepositRequest) (res models.OperationResult, err error) {
	defer s.observe("deposit", time.Now(), &res, &err)

	amount, err := wholeMWK(req.Amount)
	if err != nil {
		return res, err
	}
	if err := s.validateFields(req); err != nil {
		return res, err
	}
	if err := s.checkPin(ctx, req.PIN); err != nil {
		return res, err
	}

	return s.apply(ctx, req.ID, func(w models.Wallet, rate decimal.Decimal) (models.Transaction, error) {
		return models.Transaction{
			Type:          models.TypeDeposit,
			Direction:     models.DirectionIn,
			Amount:        decimal.NewFromInt(amount),
			TotalMWK:      &amount,
			PaymentMethod: req.Method,
			Reference:     req.Reference,
		}, nil
	})
}

// Withdraw debits whole MWK to req.Account.
func (s *WalletService) Withdraw(ctx context.Context, req models.WithdrawRequest) (res models.OperationResult, err error) {
	defer s.observe("withdraw", time.Now(), &res, &err)

	amount, err := wholeMWK(req.Amount)
	if err != nil {
		return res, err
	}
	if err := s.validateFields(req); err != nil {
		return res, err
	}
	if err := s.checkPin(ctx, req.PIN); err != nil {
		return res, err
	}

	return s.apply(ctx, req.ID, func(w models.Wallet, rate decimal.Decimal) (models.Transaction, error) {
		if w.MWK < amount {
			return models.Transaction{}, fmt.Errorf("%w: available %s", ErrInsufficientBalance, format.MWK(w.MWK))
		}
		return models.Transaction{
			Type:          models.TypeWithdraw,
			Direction:     models.DirectionOut,
			Amount:        decimal.NewFromInt(amount),
			TotalMWK:      &amount,
			PaymentMethod: req.Method,
			Reference:     req.Account,
		}, nil
	})
}

// Buy exchanges MWK for USDT at the current rate.
func (s *WalletService) Buy(ctx context.Context, req models.BuyRequest) (res models.OperationResult, err error) {
	defer s.observe("buy", time.Now(), &res, &err)

	usdt, err := usdtAmount(req.USDT)
	if err != nil {
		return res, err
	}
	if err := s.checkPin(ctx, req.PIN); err != nil {
		return res, err
	}

	res, err = s.apply(ctx, req.ID, func(w models.Wallet, rate decimal.Decimal) (models.Transaction, error) {
		cost, err := priceMWK(usdt, rate)
		if err != nil {
			return models.Transaction{}, err
		}
		if w.MWK < cost {
			return models.Transaction{}, fmt.Errorf("%w: need %s", ErrInsufficientBalance, format.MWK(cost))
		}
		return models.Transaction{
			Type:      models.TypeBuy,
			Direction: models.DirectionIn,
			Amount:    usdt,
			TotalMWK:  &cost,
		}, nil
	})
	if err != nil {
		return res, err
	}
	res.MWKCost = res.Transaction.TotalMWK
	return res, nil
}

// Sell exchanges USDT for MWK at the current rate.
func (s *WalletService) Sell(ctx context.Context, req models.SellRequest) (res models.OperationResult, err error) {
	defer s.observe("sell", time.Now(), &res, &err)

	usdt, err := usdtAmount(req.USDT)
	if err != nil {
		return res, err
	}
	if err := s.checkPin(ctx, req.PIN); err != nil {
		return res, err
	}

	res, err = s.apply(ctx, req.ID, func(w models.Wallet, rate decimal.Decimal) (models.Transaction, error) {
		gain, err := priceMWK(usdt, rate)
		if err != nil {
			return models.Transaction{}, err
		}
		if w.USDT.LessThan(usdt) {
			return models.Transaction{}, fmt.Errorf("%w: available %s", ErrInsufficientBalance, format.USDT(w.USDT))
		}
		return models.Transaction{
			Type:      models.TypeSell,
			Direction: models.DirectionOut,
			Amount:    usdt,
			TotalMWK:  &gain,
		}, nil
	})
	if err != nil {
		return res, err
	}
	res.MWKGain = res.Transaction.TotalMWK
	return res, nil
}

// apply runs read, validate, append against one log version. Losing the
// compare-and-set to another writer replays the whole sequence.
func (s *WalletService) apply(ctx context.Context, id string, draft draftFunc) (models.OperationResult, error) {
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		txs, version, err := s.ledger.Load(ctx)
		if err != nil {
			logger.Log.Errorw("failed to load transactions", "error", err)
			return models.OperationResult{}, storageError("load transactions", err)
		}

		if dup := findByID(txs, id); dup != nil {
			return s.duplicate(ctx, txs, version, *dup)
		}

		w, err := s.snapshot(ctx, txs, version)
		if err != nil {
			return models.OperationResult{}, err
		}
		rate := s.CurrentRate(ctx)

		tx, err := draft(w, rate)
		if err != nil {
			return models.OperationResult{}, err
		}
		tx.ID = id
		if tx.ID == "" {
			tx.ID = newTransactionID()
		}
		tx.Date = s.now().UTC()
		tx.Status = models.StatusCompleted

		next, appended, err := s.ledger.Append(ctx, tx, version)
		if errors.Is(err, repositories.ErrVersionConflict) {
			logger.Log.Warnw("log changed while applying, retrying", "transaction_id", tx.ID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to append transaction", "transaction_id", tx.ID, "error", err)
			return models.OperationResult{}, storageError("append transaction", err)
		}
		if !appended {
			// another writer stored the same id after our Load
			continue
		}

		wallet := s.project(append([]models.Transaction{tx}, txs...), rate)
		if err := s.cache.Save(ctx, repositories.CachedWallet{Wallet: wallet, LogVersion: next}); err != nil {
			// the log is authoritative; the next read sees a stale snapshot and rebuilds
			logger.Log.Errorw("failed to save wallet snapshot", "transaction_id", tx.ID, "error", err)
		}

		s.publish(ctx, models.EventWalletUpdated, &tx)
		return models.OperationResult{OK: true, Transaction: tx, Wallet: wallet}, nil
	}

	logger.Log.Errorw("giving up after repeated version conflicts", "retries", s.cfg.MaxRetries)
	return models.OperationResult{}, ErrConcurrentUpdate
}

// duplicate answers a replayed request with the stored record.
func (s *WalletService) duplicate(ctx context.Context, txs []models.Transaction, version int64, tx models.Transaction) (models.OperationResult, error) {
	logger.Log.Infow("request already applied", "transaction_id", tx.ID)

	w, err := s.snapshot(ctx, txs, version)
	if err != nil {
		return models.OperationResult{}, err
	}
	return models.OperationResult{OK: true, Transaction: tx, Duplicate: true, Wallet: w}, nil
}

func (s *WalletService) observe(op string, start time.Time, res *models.OperationResult, err *error) {
	metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	result := "ok"
	switch {
	case errors.Is(*err, ErrStorageFailure), errors.Is(*err, ErrConcurrentUpdate):
		result = "error"
	case *err != nil:
		result = "rejected"
	case res.Duplicate:
		result = "duplicate"
	}
	metrics.Operations.WithLabelValues(op, result).Inc()

	if *err != nil {
		logger.Log.Infow("wallet operation failed", "operation", op, "result", result, "error", *err)
	}
}

func newTransactionID() string {
	return "tx_" + ulid.Make().String()
}

func findByID(txs []models.Transaction, id string) *models.Transaction {
	if id == "" {
		return nil
	}
	for i := range txs {
		if txs[i].ID == id {
			return &txs[i]
		}
	}
	return nil
}
