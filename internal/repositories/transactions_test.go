package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

func deposit(id string, amount int64) models.Transaction {
	return models.Transaction{
		ID:            id,
		Date:          time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		Type:          models.TypeDeposit,
		Status:        models.StatusCompleted,
		Direction:     models.DirectionIn,
		Amount:        decimal.NewFromInt(amount),
		TotalMWK:      &amount,
		PaymentMethod: "bank",
		Reference:     "R-" + id,
	}
}

func TestTransactionRepository_LoadEmpty(t *testing.T) {
	repo := NewTransactionRepository(NewMemoryStore())

	txs, version, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, txs)
	assert.Equal(t, int64(0), version)
}

func TestTransactionRepository_AppendMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewMemoryStore())

	v, appended, err := repo.Append(ctx, deposit("tx_1", 100), 0)
	require.NoError(t, err)
	assert.True(t, appended)

	_, appended, err = repo.Append(ctx, deposit("tx_2", 200), v)
	require.NoError(t, err)
	assert.True(t, appended)

	txs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "tx_2", txs[0].ID)
	assert.Equal(t, "tx_1", txs[1].ID)
	assert.Equal(t, int64(200), *txs[0].TotalMWK)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(200)))
}

func TestTransactionRepository_AppendIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewMemoryStore())

	v, _, err := repo.Append(ctx, deposit("tx_1", 100), 0)
	require.NoError(t, err)

	again, appended, err := repo.Append(ctx, deposit("tx_1", 999), v)
	assert.NoError(t, err)
	assert.False(t, appended)
	assert.Equal(t, v, again)

	// a duplicate is a no-op even when the caller's version is stale
	_, appended, err = repo.Append(ctx, deposit("tx_1", 999), 0)
	assert.NoError(t, err)
	assert.False(t, appended)

	txs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, int64(100), *txs[0].TotalMWK)
}

func TestTransactionRepository_AppendStaleVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewMemoryStore())

	_, _, err := repo.Append(ctx, deposit("tx_1", 100), 0)
	require.NoError(t, err)

	_, appended, err := repo.Append(ctx, deposit("tx_2", 100), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.False(t, appended)
}

func TestTransactionRepository_CorruptLog(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Set(ctx, KeyTransactions, "{not json")
	require.NoError(t, err)

	repo := NewTransactionRepository(store)

	_, _, err = repo.Load(ctx)
	assert.Error(t, err)

	_, _, err = repo.Append(ctx, deposit("tx_1", 100), 1)
	assert.Error(t, err, "a corrupt log must never be overwritten")

	raw, _, _ := store.Get(ctx, KeyTransactions)
	assert.Equal(t, "{not json", raw)
}

func TestTransactionRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewMemoryStore())
	_, _, err := repo.Append(ctx, deposit("tx_1", 100), 0)
	require.NoError(t, err)

	found, err := repo.Find(ctx, "tx_1")
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.TypeDeposit, found.Type)

	missing, err := repo.Find(ctx, "tx_404")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTransactionRepository_ReadsLegacyNumbers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.Set(ctx, KeyTransactions,
		`[{"id":"tx_1","date":"2025-01-01T00:00:00.000Z","type":"buy","status":"completed","amount":2.5,"reference":"","paymentMethod":"","note":""}]`)
	require.NoError(t, err)

	txs, version, err := NewTransactionRepository(store).Load(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(1), version)
	assert.Nil(t, txs[0].TotalMWK)
	assert.Equal(t, "2.5", txs[0].Amount.String())
}
