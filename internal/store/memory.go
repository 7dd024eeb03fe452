package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
)

// MemoryStore keeps accounts in a process-local map. It backs the
// local deployment mode and the unit tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[uuid.UUID]domain.Account)}
}

// Seed inserts or replaces an account. Provisioning is out of band in
// the real system; this is how the local mode gets its rows.
func (s *MemoryStore) Seed(account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	account.UpdatedAt = account.CreatedAt
	s.accounts[account.ID] = account
}

func (s *MemoryStore) FindByNumberAndPassword(_ context.Context, accountNumber, password string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.AccountNumber == accountNumber && a.Password == password {
			copied := a
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("FindByNumberAndPassword: %w", domain.ErrNotFound)
}

func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("FindByID: %w", domain.ErrNotFound)
	}
	copied := a
	return &copied, nil
}

func (s *MemoryStore) FindByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.AccountNumber == accountNumber {
			copied := a
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("FindByNumber: %w", domain.ErrNotFound)
}

func (s *MemoryStore) UpdateFields(_ context.Context, id uuid.UUID, update AccountUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("UpdateFields: %w", domain.ErrNotFound)
	}
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Email != nil {
		a.Email = *update.Email
	}
	if update.Password != nil {
		a.Password = *update.Password
	}
	if update.Balance != nil {
		a.Balance = *update.Balance
	}
	a.UpdatedAt = time.Now().UTC()
	s.accounts[id] = a
	return nil
}
