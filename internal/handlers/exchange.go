package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=exchange.go -destination=mock_exchange.go -package=handlers

// BuyWriter defines the interface that the service must implement.
type BuyWriter interface {
	Buy(ctx context.Context, req models.BuyRequest) (models.OperationResult, error)
}

// SellWriter defines the interface that the service must implement.
type SellWriter interface {
	Sell(ctx context.Context, req models.SellRequest) (models.OperationResult, error)
}

// NewBuyHandler returns an HTTP handler for buying USDT with MWK.
// @Summary Buy USDT
// @Description Buys USDT at the current rate; the MWK cost is fixed on the transaction
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.BuyRequest true "Buy Request"
// @Success 200 {object} models.OperationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /wallet/buy [post]
func NewBuyHandler(svc BuyWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BuyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Buy(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewSellHandler returns an HTTP handler for selling USDT for MWK.
// @Summary Sell USDT
// @Description Sells USDT at the current rate; the MWK gain is fixed on the transaction
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.SellRequest true "Sell Request"
// @Success 200 {object} models.OperationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /wallet/sell [post]
func NewSellHandler(svc SellWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SellRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Sell(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
