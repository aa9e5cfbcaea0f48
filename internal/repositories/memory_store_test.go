package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := s.Set(ctx, "k", "a")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)

	val, version, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "a", val)
	assert.Equal(t, int64(1), version)

	_, err = s.CompareAndSet(ctx, "k", "b", 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	v, err = s.CompareAndSet(ctx, "k", "b", 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = s.CompareAndSet(ctx, "fresh", "x", 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
