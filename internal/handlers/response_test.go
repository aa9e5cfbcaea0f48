package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/cryptex-wallet/internal/services"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{services.ErrInvalidAmount, http.StatusBadRequest},
		{services.ErrMissingReference, http.StatusBadRequest},
		{services.ErrInvalidPinFormat, http.StatusBadRequest},
		{services.ErrInvalidRate, http.StatusBadRequest},
		{services.ErrInvalidPin, http.StatusForbidden},
		{services.ErrTransactionNotFound, http.StatusNotFound},
		{services.ErrConcurrentUpdate, http.StatusConflict},
		{fmt.Errorf("%w: need MK 8,850", services.ErrInsufficientBalance), http.StatusUnprocessableEntity},
		{services.ErrStorageFailure, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, errorStatus(tt.err))
		})
	}
}

func TestWriteErrorKeepsClientMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, fmt.Errorf("%w: need MK 8,850", services.ErrInsufficientBalance))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"ok":false,"error":"insufficient balance: need MK 8,850"}`, rr.Body.String())
}
