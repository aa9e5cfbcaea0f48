package services

import "github.com/shopspring/decimal"

// Engine defaults.
const (
	DefaultFallbackRate = 1770
	DefaultMaxRetries   = 3
)

// Largest amounts a single operation may move. Larger requests are rejected
// with ErrInvalidAmount.
const (
	MaxOperationMWK  = 1_000_000_000_000
	MaxOperationUSDT = 1_000_000_000
)

// PinPolicy decides how operations are gated when no PIN has been set.
type PinPolicy struct {
	// AllowWhenUnset lets every operation through while no PIN is stored.
	AllowWhenUnset bool
}

// EngineConfig gathers the fallbacks the wallet engine applies.
type EngineConfig struct {
	// FallbackRate is used when the stored MWK per USDT rate is missing,
	// unreadable or not positive.
	FallbackRate decimal.Decimal
	// Pin is the PIN policy.
	Pin PinPolicy
	// MaxRetries bounds how often a mutation is replayed after losing a
	// compare-and-set against another writer.
	MaxRetries int
}

// DefaultEngineConfig returns the configuration the wallet runs with unless told otherwise.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		FallbackRate: decimal.NewFromInt(DefaultFallbackRate),
		Pin:          PinPolicy{AllowWhenUnset: true},
		MaxRetries:   DefaultMaxRetries,
	}
}

func (c EngineConfig) normalize() EngineConfig {
	if !c.FallbackRate.IsPositive() {
		c.FallbackRate = decimal.NewFromInt(DefaultFallbackRate)
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	return c
}
