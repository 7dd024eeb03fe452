package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/ledger"
)

type AccountHandler struct {
	ledger *ledger.Service
}

func NewAccountHandler(svc *ledger.Service) *AccountHandler {
	return &AccountHandler{ledger: svc}
}

type accountDTO struct {
	ID            uuid.UUID `json:"id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Balance       string    `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAccountDTO(a *domain.Account) accountDTO {
	return accountDTO{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Email:         a.Email,
		Balance:       a.Balance.StringFixed(2),
		CreatedAt:     a.CreatedAt,
	}
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := h.ledger.CurrentAccount()
	if account == nil {
		RespondAppError(w, ErrNoActiveSession, nil)
		return
	}

	account.Balance = h.ledger.RefreshBalance(r.Context())
	RespondSuccess(w, http.StatusOK, toAccountDTO(account))
}

func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if h.ledger.CurrentAccount() == nil {
		RespondAppError(w, ErrNoActiveSession, nil)
		return
	}

	balance := h.ledger.RefreshBalance(r.Context())
	RespondSuccess(w, http.StatusOK, map[string]string{
		"balance": balance.StringFixed(2),
	})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r updateProfileRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	return errs
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	if err := h.ledger.UpdateProfile(r.Context(), req.Name, req.Email); err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// The 4-digit numeric convention is enforced here, not in the ledger
// core; the core accepts any non-empty secret.
func (r changePasswordRequest) Validate() []FieldError {
	var errs []FieldError
	if r.NewPassword == "" {
		errs = append(errs, FieldError{Field: "new_password", Message: "required"})
	} else if !isFourDigits(r.NewPassword) {
		errs = append(errs, FieldError{Field: "new_password", Message: "must be exactly 4 digits"})
	}
	return errs
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	if err := h.ledger.ChangePassword(r.Context(), req.NewPassword); err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
