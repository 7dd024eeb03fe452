// Package ledger holds the account ledger core: the single
// authenticated session, the balance mutation operations, and the
// in-memory transaction log. One mutex serializes every operation;
// there is never more than one mutation in flight.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/store"
)

// Service owns the current session's in-memory mirror of account state.
// The store is consulted on every read and write, but the mirror is
// what callers see immediately after an operation commits. The mirror
// is only updated after a store write succeeds; a failed write leaves
// it untouched.
type Service struct {
	mu      sync.Mutex
	store   store.AccountStore
	current *domain.Account
}

func NewService(accounts store.AccountStore) *Service {
	return &Service{store: accounts}
}

// Login matches an account on number and password together. Zero
// matching rows means bad credentials; distinguishing which half was
// wrong is deliberately not done.
func (s *Service) Login(ctx context.Context, accountNumber, password string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.store.FindByNumberAndPassword(ctx, accountNumber, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Login: %w", domain.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("Login: %w: %w", domain.ErrStoreUnavailable, err)
	}

	s.current = account
	copied := *account
	return &copied, nil
}

// CurrentAccount returns a copy of the session mirror, or nil when
// logged out. No I/O.
func (s *Service) CurrentAccount() *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Logout clears the session. Calling it while logged out is a no-op.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// RefreshBalance re-reads the balance from the store. On a store error
// the last known mirror value is returned instead of failing the
// caller; with no session it returns zero.
func (s *Service) RefreshBalance(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return decimal.Zero
	}

	account, err := s.store.FindByID(ctx, s.current.ID)
	if err != nil {
		return s.current.Balance
	}

	s.current.Balance = account.Balance
	return s.current.Balance
}
