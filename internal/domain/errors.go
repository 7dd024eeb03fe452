package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrNoActiveSession      = errors.New("no user logged in")
	ErrInvalidCredentials   = errors.New("invalid account number or password")
	ErrIncorrectPIN         = errors.New("incorrect PIN")
	ErrInvalidAmount        = errors.New("amount must be greater than 0")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrSelfTransfer         = errors.New("cannot transfer to your own account")
	ErrRecipientNotFound    = errors.New("recipient account not found")
	ErrStoreUnavailable     = errors.New("account store unavailable")
	ErrTransferRolledBack   = errors.New("transfer failed, sender balance restored")
	ErrTransferInconsistent = errors.New("transfer failed and rollback failed, balances need manual reconciliation")
)
