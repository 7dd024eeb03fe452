package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/store"
)

var errStoreDown = errors.New("store down")

// scriptedStore wraps the in-memory store and fails UpdateFields calls
// by position: updateErrs[i] is returned for the i-th update (nil means
// pass through). Transfer issues its writes in a fixed order, so the
// debit/credit/rollback failure scenarios are each one script.
type scriptedStore struct {
	*store.MemoryStore
	updateErrs []error
	findErr    error
	calls      int
}

func (s *scriptedStore) UpdateFields(ctx context.Context, id uuid.UUID, update store.AccountUpdate) error {
	i := s.calls
	s.calls++
	if i < len(s.updateErrs) && s.updateErrs[i] != nil {
		return s.updateErrs[i]
	}
	return s.MemoryStore.UpdateFields(ctx, id, update)
}

func (s *scriptedStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.MemoryStore.FindByID(ctx, id)
}

func (s *scriptedStore) FindByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.MemoryStore.FindByNumber(ctx, accountNumber)
}

func (s *scriptedStore) FindByNumberAndPassword(ctx context.Context, accountNumber, password string) (*domain.Account, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.MemoryStore.FindByNumberAndPassword(ctx, accountNumber, password)
}

func seedAccount(s *store.MemoryStore, number, password string, balance string) *domain.Account {
	account := domain.Account{
		ID:            uuid.New(),
		AccountNumber: number,
		Name:          "Account " + number,
		Email:         "account" + number + "@test.com",
		Password:      password,
		Balance:       decimal.RequireFromString(balance),
	}
	s.Seed(account)
	return &account
}

// newTestService returns a logged-in service over a scripted store with
// one seeded account.
func newTestService(balance string) (*Service, *scriptedStore, *domain.Account) {
	mem := store.NewMemoryStore()
	account := seedAccount(mem, "0123456789", "1234", balance)
	scripted := &scriptedStore{MemoryStore: mem}
	svc := NewService(scripted)
	mirror := *account
	svc.current = &mirror
	return svc, scripted, account
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
