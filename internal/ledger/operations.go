package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/store"
)

// Deposit credits the current account. Deposits take no PIN; only the
// amount is validated.
func (s *Service) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return decimal.Zero, fmt.Errorf("Deposit: %w", domain.ErrNoActiveSession)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("Deposit: %w", domain.ErrInvalidAmount)
	}

	newBalance := s.current.Balance.Add(amount)
	if err := s.writeBalance(ctx, newBalance); err != nil {
		return decimal.Zero, fmt.Errorf("Deposit: %w", err)
	}

	s.current.Balance = newBalance
	return newBalance, nil
}

// BuyAirtime debits the current account after a PIN check. A single
// store write.
func (s *Service) BuyAirtime(ctx context.Context, amount decimal.Decimal, pin string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateDebit(amount, pin); err != nil {
		return decimal.Zero, fmt.Errorf("BuyAirtime: %w", err)
	}

	newBalance := s.current.Balance.Sub(amount)
	if err := s.writeBalance(ctx, newBalance); err != nil {
		return decimal.Zero, fmt.Errorf("BuyAirtime: %w", err)
	}

	s.current.Balance = newBalance
	return newBalance, nil
}

// Transfer moves funds to another account as two independent writes:
// debit the sender, then credit the recipient. The store exposes no
// multi-row transaction, so if the credit fails after a successful
// debit the only recourse is one compensating write restoring the
// sender. If that write also fails the balances are inconsistent
// (sender debited, recipient not credited) and the caller is told so;
// reconciliation is manual. This failure mode is inherited from the
// source system and intentionally not papered over.
func (s *Service) Transfer(ctx context.Context, recipientAccountNumber string, amount decimal.Decimal, pin string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateDebit(amount, pin); err != nil {
		return decimal.Zero, fmt.Errorf("Transfer: %w", err)
	}
	if s.current.AccountNumber == recipientAccountNumber {
		return decimal.Zero, fmt.Errorf("Transfer: %w", domain.ErrSelfTransfer)
	}

	recipient, err := s.store.FindByNumber(ctx, recipientAccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("Transfer: %w", domain.ErrRecipientNotFound)
		}
		return decimal.Zero, fmt.Errorf("Transfer: %w: %w", domain.ErrStoreUnavailable, err)
	}

	senderOldBalance := s.current.Balance
	senderNewBalance := senderOldBalance.Sub(amount)
	recipientNewBalance := recipient.Balance.Add(amount)

	if err := s.writeBalance(ctx, senderNewBalance); err != nil {
		// Debit never happened; nothing to undo.
		return decimal.Zero, fmt.Errorf("Transfer: debit: %w", err)
	}

	creditErr := s.store.UpdateFields(ctx, recipient.ID, store.AccountUpdate{Balance: &recipientNewBalance})
	if creditErr != nil {
		if rbErr := s.writeBalance(ctx, senderOldBalance); rbErr != nil {
			return decimal.Zero, fmt.Errorf("Transfer: credit: %v: rollback: %v: %w", creditErr, rbErr, domain.ErrTransferInconsistent)
		}
		return decimal.Zero, fmt.Errorf("Transfer: credit: %v: %w", creditErr, domain.ErrTransferRolledBack)
	}

	s.current.Balance = senderNewBalance
	return senderNewBalance, nil
}

// ChangePassword replaces the shared secret. Shape rules (the 4-digit
// PIN convention) belong to the presentation layer, not here.
func (s *Service) ChangePassword(ctx context.Context, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return fmt.Errorf("ChangePassword: %w", domain.ErrNoActiveSession)
	}

	update := store.AccountUpdate{Password: &newPassword}
	if err := s.store.UpdateFields(ctx, s.current.ID, update); err != nil {
		return fmt.Errorf("ChangePassword: %w: %w", domain.ErrStoreUnavailable, err)
	}

	s.current.Password = newPassword
	return nil
}

// UpdateProfile persists name and email in one write.
func (s *Service) UpdateProfile(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return fmt.Errorf("UpdateProfile: %w", domain.ErrNoActiveSession)
	}

	update := store.AccountUpdate{Name: &name, Email: &email}
	if err := s.store.UpdateFields(ctx, s.current.ID, update); err != nil {
		return fmt.Errorf("UpdateProfile: %w: %w", domain.ErrStoreUnavailable, err)
	}

	s.current.Name = name
	s.current.Email = email
	return nil
}

// validateDebit covers the checks shared by airtime and transfer:
// session present, PIN matches, amount positive and within balance.
// Callers must hold s.mu.
func (s *Service) validateDebit(amount decimal.Decimal, pin string) error {
	if s.current == nil {
		return domain.ErrNoActiveSession
	}
	if s.current.Password != pin {
		return domain.ErrIncorrectPIN
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if s.current.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (s *Service) writeBalance(ctx context.Context, balance decimal.Decimal) error {
	err := s.store.UpdateFields(ctx, s.current.ID, store.AccountUpdate{Balance: &balance})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
