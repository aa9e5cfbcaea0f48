package repositories

import "context"

// PinRepository keeps the user's PIN secret under KeyUserPin.
type PinRepository struct {
	store KVStore
}

// NewPinRepository creates a PIN repository over store.
func NewPinRepository(store KVStore) *PinRepository {
	return &PinRepository{store: store}
}

// Get returns the stored secret or ErrNotFound.
func (r *PinRepository) Get(ctx context.Context) (string, error) {
	secret, _, err := r.store.Get(ctx, KeyUserPin)
	return secret, err
}

// Set replaces the stored secret.
func (r *PinRepository) Set(ctx context.Context, secret string) error {
	_, err := r.store.Set(ctx, KeyUserPin, secret)
	return err
}
