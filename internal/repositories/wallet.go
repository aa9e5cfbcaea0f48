package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

// ErrCorruptSnapshot is returned when the cached wallet is not a {usdt, mwk}
// pair of non-negative numbers that fit a wallet.
var ErrCorruptSnapshot = errors.New("corrupt wallet snapshot")

var maxMWK = decimal.NewFromInt(math.MaxInt64)

// CachedWallet is a persisted snapshot and the log version it was built from.
// LogVersion is zero for snapshots written without one.
type CachedWallet struct {
	Wallet     models.Wallet
	LogVersion int64
}

type walletDoc struct {
	USDT       *json.Number `json:"usdt"`
	MWK        *json.Number `json:"mwk"`
	LogVersion int64        `json:"logVersion,omitempty"`
}

// WalletRepository keeps the wallet snapshot cache under KeyWallet.
type WalletRepository struct {
	store KVStore
}

// NewWalletRepository creates a snapshot repository over store.
func NewWalletRepository(store KVStore) *WalletRepository {
	return &WalletRepository{store: store}
}

// Get returns the cached snapshot, ErrNotFound, or ErrCorruptSnapshot.
func (r *WalletRepository) Get(ctx context.Context) (CachedWallet, error) {
	raw, _, err := r.store.Get(ctx, KeyWallet)
	if err != nil {
		return CachedWallet{}, err
	}

	var doc walletDoc
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil || doc.USDT == nil || doc.MWK == nil {
		logger.Log.Warnw("wallet snapshot is malformed", "value", raw, "error", err)
		return CachedWallet{}, ErrCorruptSnapshot
	}

	usdt, err := decimal.NewFromString(doc.USDT.String())
	if err != nil {
		return CachedWallet{}, ErrCorruptSnapshot
	}
	mwk, err := decimal.NewFromString(doc.MWK.String())
	if err != nil {
		return CachedWallet{}, ErrCorruptSnapshot
	}
	mwk = mwk.Round(0)
	if usdt.IsNegative() || mwk.IsNegative() || mwk.GreaterThan(maxMWK) {
		logger.Log.Warnw("wallet snapshot out of range", "value", raw)
		return CachedWallet{}, ErrCorruptSnapshot
	}

	return CachedWallet{
		Wallet:     models.Wallet{USDT: usdt, MWK: mwk.IntPart()},
		LogVersion: doc.LogVersion,
	}, nil
}

// Save overwrites the cached snapshot.
func (r *WalletRepository) Save(ctx context.Context, cw CachedWallet) error {
	usdt := json.Number(cw.Wallet.USDT.String())
	mwk := json.Number(strconv.FormatInt(cw.Wallet.MWK, 10))

	data, err := json.Marshal(walletDoc{USDT: &usdt, MWK: &mwk, LogVersion: cw.LogVersion})
	if err != nil {
		return err
	}

	_, err = r.store.Set(ctx, KeyWallet, string(data))
	return err
}
