package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=handlers

// WalletReader defines the interface that the service must implement.
type WalletReader interface {
	GetWallet(ctx context.Context) (models.Wallet, error)
}

// WalletRecomputer defines the interface that the service must implement.
type WalletRecomputer interface {
	Recompute(ctx context.Context) (models.Wallet, error)
}

// NewGetWalletHandler returns an HTTP handler for reading the wallet balances.
// @Summary Get wallet
// @Description Returns the cached balances, rebuilding them from the transaction log when needed
// @Tags wallet
// @Produce json
// @Success 200 {object} models.WalletResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /wallet [get]
func NewGetWalletHandler(svc WalletReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wallet, err := svc.GetWallet(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.WalletResponse{OK: true, Wallet: wallet})
	}
}

// NewRecomputeHandler returns an HTTP handler that rebuilds the balances from the log.
// @Summary Recompute wallet
// @Description Rebuilds and stores the balances from the full transaction log
// @Tags wallet
// @Produce json
// @Success 200 {object} models.WalletResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /wallet/recompute [post]
func NewRecomputeHandler(svc WalletRecomputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wallet, err := svc.Recompute(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.WalletResponse{OK: true, Wallet: wallet})
	}
}
