package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
	"github.com/sbilibin2017/cryptex-wallet/internal/services"
)

func TestListTransactionsHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(m *MockTransactionLister)
		expectedStatusCode int
		expectedIDs        []string
	}{
		{
			name: "most recent first",
			setupMocks: func(m *MockTransactionLister) {
				m.EXPECT().ListTransactions(gomock.Any()).Return([]models.Transaction{{ID: "tx_2"}, {ID: "tx_1"}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedIDs:        []string{"tx_2", "tx_1"},
		},
		{
			name: "empty log",
			setupMocks: func(m *MockTransactionLister) {
				m.EXPECT().ListTransactions(gomock.Any()).Return([]models.Transaction{}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedIDs:        []string{},
		},
		{
			name: "corrupt log",
			setupMocks: func(m *MockTransactionLister) {
				m.EXPECT().ListTransactions(gomock.Any()).Return(nil, services.ErrStorageFailure)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockTransactionLister(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			NewListTransactionsHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/transactions", nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedIDs == nil {
				return
			}

			var resp models.TransactionsResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			ids := []string{}
			for _, tx := range resp.Transactions {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestGetTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockTransactionFinder(ctrl)
	m.EXPECT().FindTransaction(gomock.Any(), "tx_1").Return(models.Transaction{ID: "tx_1", Type: models.TypeBuy}, nil)
	m.EXPECT().FindTransaction(gomock.Any(), "tx_404").Return(models.Transaction{}, services.ErrTransactionNotFound)

	h := NewGetTransactionHandler(m)
	request := func(id string) *httptest.ResponseRecorder {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/transactions/"+id, nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	rr := request("tx_1")
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp models.TransactionResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, models.TypeBuy, resp.Transaction.Type)

	assert.Equal(t, http.StatusNotFound, request("tx_404").Code)
}
