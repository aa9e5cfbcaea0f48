package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
)

// HasPin reports whether a PIN is stored.
func (s *WalletService) HasPin(ctx context.Context) (bool, error) {
	secret, err := s.storedPin(ctx)
	if err != nil {
		return false, err
	}
	return secret != "", nil
}

// VerifyPin checks pin against the stored secret. With no PIN stored the
// outcome follows the PIN policy.
func (s *WalletService) VerifyPin(ctx context.Context, pin string) (bool, error) {
	secret, err := s.storedPin(ctx)
	if err != nil {
		return false, err
	}
	if secret == "" {
		return s.cfg.Pin.AllowWhenUnset, nil
	}
	return matchPin(secret, pin), nil
}

// SetPin stores a bcrypt hash of req.PIN. Replacing an existing PIN requires
// the current one.
func (s *WalletService) SetPin(ctx context.Context, req models.SetPinRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidPinFormat
	}

	secret, err := s.storedPin(ctx)
	if err != nil {
		return err
	}
	if secret != "" && !matchPin(secret, req.Current) {
		logger.Log.Warnw("PIN change rejected, current PIN does not match")
		return ErrInvalidPin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash PIN", "error", err)
		return err
	}
	if err := s.pins.Set(ctx, string(hash)); err != nil {
		logger.Log.Errorw("failed to save PIN", "error", err)
		return storageError("save PIN", err)
	}

	logger.Log.Infow("PIN updated", "replaced", secret != "")
	return nil
}

// checkPin gates a mutation.
func (s *WalletService) checkPin(ctx context.Context, pin string) error {
	ok, err := s.VerifyPin(ctx, pin)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidPin
	}
	return nil
}

func (s *WalletService) storedPin(ctx context.Context) (string, error) {
	secret, err := s.pins.Get(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read PIN", "error", err)
		return "", storageError("read PIN", err)
	}
	return secret, nil
}

// matchPin compares against a bcrypt hash, or byte for byte against a
// plaintext secret written before PINs were hashed.
func matchPin(secret, pin string) bool {
	if pin == "" {
		return false
	}
	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(pin)) == 1
}
