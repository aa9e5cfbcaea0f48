package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=rate.go -destination=mock_rate.go -package=handlers

// RateReader defines the interface that the service must implement.
type RateReader interface {
	CurrentRate(ctx context.Context) decimal.Decimal
}

// RateWriter defines the interface that the service must implement.
type RateWriter interface {
	SetRate(ctx context.Context, rate decimal.Decimal) error
}

// NewGetRateHandler returns the MWK per USDT rate in force.
// @Summary Get rate
// @Tags rate
// @Produce json
// @Success 200 {object} models.RateResponse
// @Router /rate [get]
func NewGetRateHandler(svc RateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.RateResponse{OK: true, Rate: svc.CurrentRate(r.Context())})
	}
}

// NewSetRateHandler configures the MWK per USDT rate.
// @Summary Set rate
// @Description Stores a new rate; past transactions keep the value they were priced at
// @Tags rate
// @Accept json
// @Produce json
// @Param request body models.SetRateRequest true "Rate"
// @Success 200 {object} models.RateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /rate [put]
func NewSetRateHandler(svc RateWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SetRateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.SetRate(r.Context(), req.Rate); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.RateResponse{OK: true, Rate: req.Rate})
	}
}
