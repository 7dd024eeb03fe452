package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/ledger"
	"github.com/Bolitupac/mobilebankapp/internal/logging"
)

// OperationsHandler fronts the balance-affecting operations. It records
// transaction-log entries after a successful call; the ledger core
// itself never writes the log.
type OperationsHandler struct {
	ledger *ledger.Service
	txlog  *ledger.Log
}

func NewOperationsHandler(svc *ledger.Service, txlog *ledger.Log) *OperationsHandler {
	return &OperationsHandler{ledger: svc, txlog: txlog}
}

type depositRequest struct {
	Amount string `json:"amount"`
}

type transferRequest struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	PIN           string `json:"pin"`
}

type airtimeRequest struct {
	Network string `json:"network"`
	Phone   string `json:"phone"`
	Amount  string `json:"amount"`
	PIN     string `json:"pin"`
}

type balanceResponse struct {
	NewBalance string `json:"new_balance"`
	Message    string `json:"message"`
}

// parseAmount accepts decimal strings only; anything non-numeric maps
// to the invalid-amount error the core would return for a non-positive
// value.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

func (h *OperationsHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	newBalance, err := h.ledger.Deposit(r.Context(), amount)
	if err != nil {
		logging.FromContext(r.Context()).Warn("deposit failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	h.txlog.Record(domain.TransactionKindDeposit, map[string]any{
		"amount":      amount.StringFixed(2),
		"new_balance": newBalance.StringFixed(2),
	})

	RespondSuccess(w, http.StatusOK, balanceResponse{
		NewBalance: newBalance.StringFixed(2),
		Message:    "Deposit successful",
	})
}

func (h *OperationsHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if req.AccountNumber == "" {
		RespondValidationError(w, []FieldError{{Field: "account_number", Message: "required"}})
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	newBalance, err := h.ledger.Transfer(r.Context(), req.AccountNumber, amount, req.PIN)
	if err != nil {
		logging.FromContext(r.Context()).Warn("transfer failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	h.txlog.Record(domain.TransactionKindTransfer, map[string]any{
		"bank":           req.Bank,
		"account_number": req.AccountNumber,
		"amount":         amount.StringFixed(2),
		"new_balance":    newBalance.StringFixed(2),
	})

	RespondSuccess(w, http.StatusOK, balanceResponse{
		NewBalance: newBalance.StringFixed(2),
		Message:    "Transfer successful",
	})
}

func (h *OperationsHandler) BuyAirtime(w http.ResponseWriter, r *http.Request) {
	var req airtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	newBalance, err := h.ledger.BuyAirtime(r.Context(), amount, req.PIN)
	if err != nil {
		logging.FromContext(r.Context()).Warn("airtime purchase failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	h.txlog.Record(domain.TransactionKindAirtime, map[string]any{
		"network":     req.Network,
		"phone":       req.Phone,
		"amount":      amount.StringFixed(2),
		"new_balance": newBalance.StringFixed(2),
	})

	RespondSuccess(w, http.StatusOK, balanceResponse{
		NewBalance: newBalance.StringFixed(2),
		Message:    "Airtime purchased",
	})
}
