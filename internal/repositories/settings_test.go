package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFxRateRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewFxRateRepository(store)

	_, err := repo.GetRate(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.SetRate(ctx, decimal.RequireFromString("1785.5")))
	rate, err := repo.GetRate(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "1785.5", rate.String())

	_, err = store.Set(ctx, KeyFxRate, `"1800"`)
	require.NoError(t, err)
	rate, err = repo.GetRate(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "1800", rate.String())

	_, err = store.Set(ctx, KeyFxRate, "abc")
	require.NoError(t, err)
	_, err = repo.GetRate(ctx)
	assert.Error(t, err)
}

func TestPinRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPinRepository(NewMemoryStore())

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Set(ctx, "secret"))
	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "secret", got)
}
