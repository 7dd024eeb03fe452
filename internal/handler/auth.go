package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bolitupac/mobilebankapp/internal/auth"
	"github.com/Bolitupac/mobilebankapp/internal/ledger"
)

type AuthHandler struct {
	ledger    *ledger.Service
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthHandler(svc *ledger.Service, jwtSecret string, jwtExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		ledger:    svc,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

type loginRequest struct {
	AccountNumber string `json:"account_number"`
	Password      string `json:"password"`
}

func (r loginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.AccountNumber == "" {
		errs = append(errs, FieldError{Field: "account_number", Message: "required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "required"})
	}
	return errs
}

type loginResponse struct {
	Token   string     `json:"token"`
	Account accountDTO `json:"account"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	account, err := h.ledger.Login(r.Context(), req.AccountNumber, req.Password)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	token, err := auth.GenerateToken(account.ID, account.AccountNumber, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		RespondAppError(w, ErrInternalError, nil)
		return
	}

	RespondSuccess(w, http.StatusOK, loginResponse{
		Token:   token,
		Account: toAccountDTO(account),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.ledger.Logout()
	RespondSuccess(w, http.StatusOK, map[string]string{"message": "logged out"})
}
