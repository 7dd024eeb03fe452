package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
	"github.com/Bolitupac/mobilebankapp/internal/store"
	"github.com/Bolitupac/mobilebankapp/internal/testutil"
)

func TestPostgresStoreLookups(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewPostgresStore(db)
	ctx := context.Background()

	seeded := testutil.SeedTestAccount(t, db, "0123456789", "alice", "1234", decimal.RequireFromString("1000.00"))

	t.Run("by number and password", func(t *testing.T) {
		got, err := s.FindByNumberAndPassword(ctx, "0123456789", "1234")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)
		assert.True(t, got.Balance.Equal(decimal.RequireFromString("1000.00")))

		_, err = s.FindByNumberAndPassword(ctx, "0123456789", "wrong")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := s.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", got.AccountNumber)

		_, err = s.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("by number", func(t *testing.T) {
		got, err := s.FindByNumber(ctx, "0123456789")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)

		_, err = s.FindByNumber(ctx, "9999999999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresStoreUpdateFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.NewPostgresStore(db)
	ctx := context.Background()

	seeded := testutil.SeedTestAccount(t, db, "0123456789", "alice", "1234", decimal.RequireFromString("1000.00"))

	t.Run("partial update leaves other columns alone", func(t *testing.T) {
		balance := decimal.RequireFromString("750.25")
		err := s.UpdateFields(ctx, seeded.ID, store.AccountUpdate{Balance: &balance})
		require.NoError(t, err)

		got, err := s.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(balance))
		assert.Equal(t, seeded.Name, got.Name)
		assert.Equal(t, seeded.Password, got.Password)
	})

	t.Run("profile and password", func(t *testing.T) {
		name, email, password := "Renamed", "renamed@test.com", "5678"
		err := s.UpdateFields(ctx, seeded.ID, store.AccountUpdate{
			Name:     &name,
			Email:    &email,
			Password: &password,
		})
		require.NoError(t, err)

		got, err := s.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "renamed@test.com", got.Email)
		assert.Equal(t, "5678", got.Password)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		err := s.UpdateFields(ctx, seeded.ID, store.AccountUpdate{})
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "Nobody"
		err := s.UpdateFields(ctx, uuid.New(), store.AccountUpdate{Name: &name})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
