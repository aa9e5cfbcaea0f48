// Package bus delivers wallet change notifications to other contexts that
// share the same store. Events are hints: receivers re-read the wallet.
package bus

import (
	"context"
	"errors"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// Defaults shared by every transport.
const (
	Channel = "cryptex-wallet"
	PingKey = "walletPing"
)

// Publisher sends an event to every listening context.
type Publisher interface {
	Publish(ctx context.Context, ev models.Event) error
}

// Multi fans an event out to several publishers and joins their errors.
type Multi []Publisher

// Publish sends ev through every publisher, even after one fails.
func (m Multi) Publish(ctx context.Context, ev models.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
