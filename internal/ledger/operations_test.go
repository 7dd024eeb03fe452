package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
)

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		amount      string
		updateErrs  []error
		wantBalance string
		wantErr     error
	}{
		{
			name:        "positive amount",
			amount:      "250.50",
			wantBalance: "1250.50",
		},
		{
			name:        "fractional cents are exact",
			amount:      "0.01",
			wantBalance: "1000.01",
		},
		{
			name:    "zero amount",
			amount:  "0",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			amount:  "-50",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:       "store write fails",
			amount:     "100",
			updateErrs: []error{errStoreDown},
			wantErr:    domain.ErrStoreUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, scripted, _ := newTestService("1000.00")
			scripted.updateErrs = tc.updateErrs

			got, err := svc.Deposit(ctx, dec(tc.amount))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, svc.CurrentAccount().Balance.Equal(dec("1000.00")),
					"failed deposit must not change the balance")
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tc.wantBalance)))
			assert.True(t, svc.CurrentAccount().Balance.Equal(dec(tc.wantBalance)))
		})
	}
}

func TestBuyAirtime(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		amount      string
		pin         string
		updateErrs  []error
		wantBalance string
		wantErr     error
	}{
		{
			name:        "valid purchase",
			amount:      "200.00",
			pin:         "1234",
			wantBalance: "800.00",
		},
		{
			name:        "entire balance",
			amount:      "1000.00",
			pin:         "1234",
			wantBalance: "0.00",
		},
		{
			name:    "amount above balance",
			amount:  "1000.01",
			pin:     "1234",
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:    "wrong PIN with valid amount",
			amount:  "200.00",
			pin:     "0000",
			wantErr: domain.ErrIncorrectPIN,
		},
		{
			name:    "wrong PIN checked before amount",
			amount:  "-1",
			pin:     "0000",
			wantErr: domain.ErrIncorrectPIN,
		},
		{
			name:    "zero amount",
			amount:  "0",
			pin:     "1234",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:       "store write fails",
			amount:     "200.00",
			pin:        "1234",
			updateErrs: []error{errStoreDown},
			wantErr:    domain.ErrStoreUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, scripted, _ := newTestService("1000.00")
			scripted.updateErrs = tc.updateErrs

			got, err := svc.BuyAirtime(ctx, dec(tc.amount), tc.pin)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, svc.CurrentAccount().Balance.Equal(dec("1000.00")))
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tc.wantBalance)))
			assert.True(t, svc.CurrentAccount().Balance.Equal(dec(tc.wantBalance)))
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and updates mirror", func(t *testing.T) {
		svc, scripted, account := newTestService("1000.00")

		require.NoError(t, svc.ChangePassword(ctx, "5678"))

		stored, err := scripted.MemoryStore.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "5678", stored.Password)

		// The new secret authorizes the next operation.
		_, err = svc.BuyAirtime(ctx, dec("10"), "5678")
		assert.NoError(t, err)
		_, err = svc.BuyAirtime(ctx, dec("10"), "1234")
		assert.ErrorIs(t, err, domain.ErrIncorrectPIN)
	})

	t.Run("store failure leaves secret unchanged", func(t *testing.T) {
		svc, scripted, _ := newTestService("1000.00")
		scripted.updateErrs = []error{errStoreDown}

		require.ErrorIs(t, svc.ChangePassword(ctx, "5678"), domain.ErrStoreUnavailable)

		_, err := svc.BuyAirtime(ctx, dec("10"), "1234")
		assert.NoError(t, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("persists both fields in one write", func(t *testing.T) {
		svc, scripted, account := newTestService("1000.00")

		require.NoError(t, svc.UpdateProfile(ctx, "New Name", "new@test.com"))
		assert.Equal(t, 1, scripted.calls)

		stored, err := scripted.MemoryStore.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", stored.Name)
		assert.Equal(t, "new@test.com", stored.Email)

		current := svc.CurrentAccount()
		assert.Equal(t, "New Name", current.Name)
		assert.Equal(t, "new@test.com", current.Email)
	})

	t.Run("store failure leaves mirror unchanged", func(t *testing.T) {
		svc, scripted, account := newTestService("1000.00")
		scripted.updateErrs = []error{errStoreDown}

		require.ErrorIs(t, svc.UpdateProfile(ctx, "New Name", "new@test.com"), domain.ErrStoreUnavailable)

		current := svc.CurrentAccount()
		assert.Equal(t, account.Name, current.Name)
		assert.Equal(t, account.Email, current.Email)
	})
}

// The worked example from the product brief: 1000.00 on hand, a 200.00
// airtime purchase succeeds, then a 900.00 transfer bounces and the
// balance stays at 800.00.
func TestAirtimeThenOverdrawnTransfer(t *testing.T) {
	ctx := context.Background()
	svc, scripted, _ := newTestService("1000.00")
	seedAccount(scripted.MemoryStore, "0000000001", "4321", "0.00")

	got, err := svc.BuyAirtime(ctx, dec("200.00"), "1234")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("800.00")))

	_, err = svc.Transfer(ctx, "0000000001", dec("900.00"), "1234")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.True(t, svc.CurrentAccount().Balance.Equal(dec("800.00")))
}
