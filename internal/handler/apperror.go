package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrMissingToken       = &AppError{http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header required"}
	ErrInvalidToken       = &AppError{http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired"}
	ErrSessionExpired     = &AppError{http.StatusUnauthorized, "SESSION_EXPIRED", "Session is no longer active, please log in again"}
	ErrInvalidCredentials = &AppError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid account number or password"}
	ErrInvalidRequest     = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed   = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed"}
	ErrResourceNotFound   = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError      = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrNoActiveSession      = &AppError{http.StatusUnauthorized, "NO_ACTIVE_SESSION", "No user logged in"}
	ErrIncorrectPIN         = &AppError{http.StatusUnprocessableEntity, "INCORRECT_PIN", "Incorrect PIN"}
	ErrInvalidAmount        = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be greater than 0"}
	ErrInsufficientFunds    = &AppError{http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS", "Insufficient funds"}
	ErrSelfTransfer         = &AppError{http.StatusUnprocessableEntity, "SELF_TRANSFER_NOT_ALLOWED", "Cannot transfer to your own account"}
	ErrRecipientNotFound    = &AppError{http.StatusUnprocessableEntity, "RECIPIENT_NOT_FOUND", "Recipient account not found"}
	ErrStoreUnavailable     = &AppError{http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Account store unavailable, please try again"}
	ErrTransferRolledBack   = &AppError{http.StatusServiceUnavailable, "TRANSFER_ROLLED_BACK", "Transfer failed, your balance was restored"}
	ErrTransferInconsistent = &AppError{http.StatusInternalServerError, "TRANSFER_INCONSISTENT", "Transfer failed and could not be rolled back, contact support"}
)
