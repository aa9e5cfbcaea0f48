package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
)

//go:generate mockgen -source=wallet.go -destination=mock_services.go -package=services

// TransactionLedger is the append-only transaction log.
type TransactionLedger interface {
	Load(ctx context.Context) ([]models.Transaction, int64, error)                         // Returns the log and its version
	Append(ctx context.Context, tx models.Transaction, version int64) (int64, bool, error) // Prepends tx if the log is still at version
	Find(ctx context.Context, id string) (*models.Transaction, error)                      // Returns the record with id or nil
}

// WalletCache stores the derived wallet snapshot.
type WalletCache interface {
	Get(ctx context.Context) (repositories.CachedWallet, error)   // Returns the cached snapshot
	Save(ctx context.Context, cw repositories.CachedWallet) error // Overwrites the cached snapshot
}

// RateStore stores the configured MWK per USDT rate.
type RateStore interface {
	GetRate(ctx context.Context) (decimal.Decimal, error)    // Returns the stored rate
	SetRate(ctx context.Context, rate decimal.Decimal) error // Stores a new rate
}

// PinStore stores the PIN secret.
type PinStore interface {
	Get(ctx context.Context) (string, error)      // Returns the stored secret
	Set(ctx context.Context, secret string) error // Replaces the stored secret
}

// Publisher broadcasts wallet change hints.
type Publisher interface {
	Publish(ctx context.Context, ev models.Event) error // Sends ev to other contexts
}

// WalletService is the single entry point for reading and mutating the wallet.
type WalletService struct {
	ledger    TransactionLedger
	cache     WalletCache
	rates     RateStore
	pins      PinStore
	publisher Publisher
	cfg       EngineConfig
	validate  *validator.Validate
	now       func() time.Time
}

// NewWalletService creates a new WalletService. publisher may be nil.
func NewWalletService(
	ledger TransactionLedger,
	cache WalletCache,
	rates RateStore,
	pins PinStore,
	publisher Publisher,
	cfg EngineConfig,
) *WalletService {
	return &WalletService{
		ledger:    ledger,
		cache:     cache,
		rates:     rates,
		pins:      pins,
		publisher: publisher,
		cfg:       cfg.normalize(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
}

// ListTransactions returns the whole log, most recent first.
func (s *WalletService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs, _, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, storageError("load transactions", err)
	}
	return txs, nil
}

// FindTransaction returns the record with id.
func (s *WalletService) FindTransaction(ctx context.Context, id string) (models.Transaction, error) {
	tx, err := s.ledger.Find(ctx, id)
	if err != nil {
		return models.Transaction{}, storageError("find transaction", err)
	}
	if tx == nil {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return *tx, nil
}
