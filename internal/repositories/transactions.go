package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// TransactionRepository keeps the append-only transaction log under
// KeyTransactions, most recent first.
type TransactionRepository struct {
	store KVStore
}

// NewTransactionRepository creates a log repository over store.
func NewTransactionRepository(store KVStore) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Load returns the whole log and the version it was read at.
// A missing log is empty at version 0; an undecodable one is an error.
func (r *TransactionRepository) Load(ctx context.Context) ([]models.Transaction, int64, error) {
	raw, version, err := r.store.Get(ctx, KeyTransactions)
	if errors.Is(err, ErrNotFound) {
		return []models.Transaction{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var txs []models.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		logger.Log.Errorw("transaction log is not decodable", "version", version, "error", err)
		return nil, 0, fmt.Errorf("decode transactions: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, version, nil
}

// List returns the whole log, most recent first.
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	txs, _, err := r.Load(ctx)
	return txs, err
}

// Find returns the record with id, or nil if there is none.
func (r *TransactionRepository) Find(ctx context.Context, id string) (*models.Transaction, error) {
	txs, _, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return findTransaction(txs, id), nil
}

// Append prepends tx unless a record with the same id exists, in which case
// it does nothing and reports appended == false. version must be the one
// returned by the Load the caller validated against; if another writer got
// in first Append fails with ErrVersionConflict.
func (r *TransactionRepository) Append(ctx context.Context, tx models.Transaction, version int64) (int64, bool, error) {
	txs, current, err := r.Load(ctx)
	if err != nil {
		return 0, false, err
	}
	if findTransaction(txs, tx.ID) != nil {
		logger.Log.Infow("transaction already in log", "transaction_id", tx.ID)
		return current, false, nil
	}
	if current != version {
		return current, false, ErrVersionConflict
	}

	data, err := json.Marshal(append([]models.Transaction{tx}, txs...))
	if err != nil {
		return 0, false, fmt.Errorf("encode transactions: %w", err)
	}

	next, err := r.store.CompareAndSet(ctx, KeyTransactions, string(data), version)
	if err != nil {
		return 0, false, err
	}

	logger.Log.Infow("transaction appended",
		"transaction_id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
		"version", next,
	)
	return next, true, nil
}

func findTransaction(txs []models.Transaction, id string) *models.Transaction {
	for i := range txs {
		if txs[i].ID == id {
			return &txs[i]
		}
	}
	return nil
}
