package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
)

func SeedTestAccount(t *testing.T, db *sql.DB, accountNumber, name, password string, balance decimal.Decimal) *domain.Account {
	t.Helper()

	account := &domain.Account{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Name:          name,
		Email:         name + "@test.com",
		Password:      password,
		Balance:       balance,
	}

	_, err := db.Exec(
		`INSERT INTO accounts (id, account_number, name, email, password, balance)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		account.ID, account.AccountNumber, account.Name, account.Email,
		account.Password, account.Balance.StringFixed(2),
	)
	if err != nil {
		t.Fatalf("seed account %s: %v", accountNumber, err)
	}
	return account
}

func GetAccountBalance(t *testing.T, db *sql.DB, id uuid.UUID) decimal.Decimal {
	t.Helper()

	var raw string
	if err := db.QueryRow(`SELECT balance FROM accounts WHERE id = $1`, id).Scan(&raw); err != nil {
		t.Fatalf("get balance for %s: %v", id, err)
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse balance %q: %v", raw, err)
	}
	return balance
}
