package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/sbilibin2017/cryptex-wallet/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError answers with the status matching err. Unknown errors are
// reported as internal without their text.
func writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "error", err)
		msg = "Internal server error"
	}
	writeJSON(w, status, models.ErrorResponse{OK: false, Error: msg})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrInvalidPinFormat),
		errors.Is(err, services.ErrInvalidRate):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidPin):
		return http.StatusForbidden
	case errors.Is(err, services.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Warnw("failed to decode request body", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{OK: false, Error: "Invalid request body"})
		return false
	}
	return true
}
