package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=pin.go -destination=mock_pin.go -package=handlers

// PinChecker defines the interface that the service must implement.
type PinChecker interface {
	HasPin(ctx context.Context) (bool, error)
	VerifyPin(ctx context.Context, pin string) (bool, error)
}

// PinSetter defines the interface that the service must implement.
type PinSetter interface {
	SetPin(ctx context.Context, req models.SetPinRequest) error
}

// NewGetPinStatusHandler reports whether a PIN is configured.
// @Summary PIN status
// @Tags pin
// @Produce json
// @Success 200 {object} models.PinStatusResponse
// @Router /pin [get]
func NewGetPinStatusHandler(svc PinChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		has, err := svc.HasPin(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.PinStatusResponse{OK: true, HasPin: has})
	}
}

// NewVerifyPinHandler checks a PIN without performing an operation.
// @Summary Verify PIN
// @Tags pin
// @Accept json
// @Produce json
// @Param request body models.VerifyPinRequest true "PIN"
// @Success 200 {object} models.VerifyPinResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /pin/verify [post]
func NewVerifyPinHandler(svc PinChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyPinRequest
		if !decodeBody(w, r, &req) {
			return
		}

		valid, err := svc.VerifyPin(r.Context(), req.PIN)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.VerifyPinResponse{OK: true, Valid: valid})
	}
}

// NewSetPinHandler sets or changes the PIN.
// @Summary Set PIN
// @Description Sets the PIN; changing an existing PIN requires the current one
// @Tags pin
// @Accept json
// @Produce json
// @Param request body models.SetPinRequest true "PIN change"
// @Success 200 {object} models.PinStatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /pin [put]
func NewSetPinHandler(svc PinSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SetPinRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := svc.SetPin(r.Context(), req); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.PinStatusResponse{OK: true, HasPin: true})
	}
}
