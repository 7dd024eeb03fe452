// Package store defines the persistent account contract the ledger core
// runs against: point lookups and point updates only, no batch or
// transactional multi-row API. The transfer operation manages its own
// two-write sequence because of exactly this restriction.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
)

// AccountUpdate is a partial update; nil fields are left untouched.
type AccountUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Balance  *decimal.Decimal
}

// AccountStore is implemented by the Postgres-backed store and the
// in-memory store. Lookups return domain.ErrNotFound when no row
// matches; any other error means the store itself failed.
type AccountStore interface {
	FindByNumberAndPassword(ctx context.Context, accountNumber, password string) (*domain.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	UpdateFields(ctx context.Context, id uuid.UUID, update AccountUpdate) error
}
