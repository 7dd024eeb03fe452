package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bolitupac/mobilebankapp/internal/domain"
)

const accountColumns = `id, account_number, name, email, password, balance, created_at, updated_at`

type PoolConfig struct {
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetimeS int
	ConnMaxIdleTimeS int
}

// PostgresStore implements AccountStore against an accounts table.
// Balances are NUMERIC(12,2) and scanned through strings to keep them
// exact.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func NewPostgresDB(ctx context.Context, databaseURL string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("NewPostgresDB: open: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeS) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("NewPostgresDB: ping: %w", err)
	}

	return db, nil
}

func (s *PostgresStore) FindByNumberAndPassword(ctx context.Context, accountNumber, password string) (*domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_number = $1 AND password = $2`,
		accountNumber, password,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("FindByNumberAndPassword: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("FindByNumberAndPassword: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("FindByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) FindByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_number = $1`, accountNumber,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("FindByNumber: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("FindByNumber: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) UpdateFields(ctx context.Context, id uuid.UUID, update AccountUpdate) error {
	set := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.Password != nil {
		add("password", *update.Password)
	}
	if update.Balance != nil {
		add("balance", update.Balance.StringFixed(2))
	}
	if len(set) == 0 {
		return nil
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := `UPDATE accounts SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("UpdateFields: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateFields: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("UpdateFields: %w", domain.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*domain.Account, error) {
	var (
		a       domain.Account
		balance string
	)
	err := s.Scan(
		&a.ID, &a.AccountNumber, &a.Name, &a.Email, &a.Password,
		&balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("scanAccount: balance: %w", err)
	}
	return &a, nil
}
