package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=withdraw.go -destination=mock_withdraw.go -package=handlers

// WithdrawWriter defines the interface that the service must implement.
type WithdrawWriter interface {
	Withdraw(ctx context.Context, req models.WithdrawRequest) (models.OperationResult, error)
}

// NewWithdrawHandler returns an HTTP handler for withdrawing MWK.
// @Summary Withdraw MWK
// @Description Debits whole MWK to a payout account
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.OperationResult
// @Failure 400 {object} models.ErrorResponse "Invalid amount or account"
// @Failure 403 {object} models.ErrorResponse "Invalid PIN"
// @Failure 422 {object} models.ErrorResponse "Insufficient balance"
// @Failure 409 {object} models.ErrorResponse "Concurrent update"
// @Router /wallet/withdraw [post]
func NewWithdrawHandler(svc WithdrawWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WithdrawRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Withdraw(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
