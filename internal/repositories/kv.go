package repositories

import (
	"context"
	"errors"
)

// Keys of the persisted wallet state.
const (
	KeyTransactions = "transactions"
	KeyWallet       = "wallet"
	KeyFxRate       = "fxRateMWK"
	KeyUserPin      = "userPin"
)

var (
	// ErrNotFound is returned when a key has never been written.
	ErrNotFound = errors.New("key not found")
	// ErrVersionConflict is returned when a compare-and-set lost against another writer.
	ErrVersionConflict = errors.New("version conflict")
)

// KVStore is the persistent key/value store shared by every context that
// opens the same wallet. Each key carries a version that starts at 1 on the
// first write and grows by one on every write; version 0 means absent.
type KVStore interface {
	// Get returns the value and its version, or ErrNotFound.
	Get(ctx context.Context, key string) (string, int64, error)
	// Set writes unconditionally and returns the new version.
	Set(ctx context.Context, key, value string) (int64, error)
	// CompareAndSet writes only if the key is still at version and returns
	// the new version, or ErrVersionConflict.
	CompareAndSet(ctx context.Context, key, value string, version int64) (int64, error)
}
