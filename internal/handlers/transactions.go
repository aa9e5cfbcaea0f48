package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/cryptex-wallet/internal/models"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=handlers

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

// TransactionFinder defines the interface that the service must implement.
type TransactionFinder interface {
	FindTransaction(ctx context.Context, id string) (models.Transaction, error)
}

// NewListTransactionsHandler returns an HTTP handler for the transaction log.
// @Summary List transactions
// @Description Returns every transaction, most recent first
// @Tags transactions
// @Produce json
// @Success 200 {object} models.TransactionsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := svc.ListTransactions(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.TransactionsResponse{OK: true, Transactions: txs})
	}
}

// NewGetTransactionHandler returns an HTTP handler for a single transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.TransactionResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{id} [get]
func NewGetTransactionHandler(svc TransactionFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := svc.FindTransaction(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.TransactionResponse{OK: true, Transaction: tx})
	}
}
