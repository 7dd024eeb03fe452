package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is one bank customer row. Password doubles as the login
// credential and the transaction PIN; the source system never separated
// the two, and it is stored in the clear (known limitation).
type Account struct {
	ID            uuid.UUID
	AccountNumber string
	Name          string
	Email         string
	Password      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
