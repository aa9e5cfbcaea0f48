package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=deposit.go -destination=mock_deposit.go -package=handlers

// DepositWriter defines the interface that the service must implement.
type DepositWriter interface {
	Deposit(ctx context.Context, req models.DepositRequest) (models.OperationResult, error)
}

// NewDepositHandler returns an HTTP handler for depositing MWK.
// @Summary Deposit MWK
// @Description Credits whole MWK. Requests repeating a known id return the stored transaction.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 200 {object} models.OperationResult
// @Failure 400 {object} models.ErrorResponse "Invalid amount or missing field"
// @Failure 403 {object} models.ErrorResponse "Invalid PIN"
// @Failure 500 {object} models.ErrorResponse
// @Router /wallet/deposit [post]
func NewDepositHandler(svc DepositWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.DepositRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Deposit(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
