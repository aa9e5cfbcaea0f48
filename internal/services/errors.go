package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
)

// Error variables
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrMissingField        = errors.New("missing field")
	ErrMissingMethod       = fmt.Errorf("%w: select a payment method", ErrMissingField)
	ErrMissingReference    = fmt.Errorf("%w: enter a reference", ErrMissingField)
	ErrInvalidAccount      = fmt.Errorf("%w: enter a valid account of at least 5 characters", ErrMissingField)
	ErrInvalidPin          = errors.New("invalid PIN")
	ErrInvalidPinFormat    = errors.New("PIN must be 4 to 6 digits")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidRate         = errors.New("rate must be a positive number")
	ErrStorageFailure      = errors.New("storage failure")
	ErrConcurrentUpdate    = errors.New("wallet changed concurrently, try again")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCorruptSnapshot never reaches callers: a corrupt snapshot is rebuilt.
	ErrCorruptSnapshot = repositories.ErrCorruptSnapshot
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}
