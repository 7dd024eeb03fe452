package handler

import (
	"net/http"

	"github.com/Bolitupac/mobilebankapp/internal/ledger"
)

type TransactionsHandler struct {
	txlog *ledger.Log
}

func NewTransactionsHandler(txlog *ledger.Log) *TransactionsHandler {
	return &TransactionsHandler{txlog: txlog}
}

// List returns the process-lifetime history, newest first. Nothing is
// read back from the account store; history starts empty on boot.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	RespondSuccess(w, http.StatusOK, h.txlog.List())
}

func (h *TransactionsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.txlog.Clear()
	RespondSuccess(w, http.StatusOK, map[string]string{"message": "transaction history cleared"})
}
