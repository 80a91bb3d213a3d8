// Package repository provides data access layer implementations for the
// vending payment backend. Repositories operate through db.Querier so a
// service can run them against the pool or inside a transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cupcade/vendpay/internal/db"
	"github.com/cupcade/vendpay/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// DeductBalance atomically subtracts amountCents from the account's
	// balance, but only if the current balance covers it. Returns the
	// post-decrement balance as reported by the store, or
	// models.ErrConditionFailed when the sufficiency condition was rejected.
	DeductBalance(ctx context.Context, id uuid.UUID, amountCents int64) (int64, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	q db.Querier
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q db.Querier) AccountRepository {
	return &accountRepository{q: q}
}

const accountColumns = `id, email, password_hash, customer_id, balance_cents, created_at, updated_at`

// Create inserts a new account record
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	query := `
		INSERT INTO accounts (id, email, password_hash, customer_id, balance_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.q.QueryRowContext(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.CustomerID,
		account.BalanceCents,
	).Scan(&account.CreatedAt, &account.UpdatedAt)

	if isUniqueViolation(err) {
		return models.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByID retrieves an account by its UUID
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	return r.scanAccount(r.q.QueryRowContext(ctx, query, id))
}

// FindByEmail retrieves an account by its unique email
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	return r.scanAccount(r.q.QueryRowContext(ctx, query, email))
}

// DeductBalance performs the conditional decrement. The WHERE clause is
// the funds check: a concurrent spend that drained the balance between
// the caller's read and this write surfaces as ErrConditionFailed
// rather than a negative balance.
func (r *accountRepository) DeductBalance(ctx context.Context, id uuid.UUID, amountCents int64) (int64, error) {
	query := `
		UPDATE accounts
		SET balance_cents = balance_cents - $2,
		    updated_at = NOW()
		WHERE id = $1 AND balance_cents >= $2
		RETURNING balance_cents
	`

	var newBalance int64
	err := r.q.QueryRowContext(ctx, query, id, amountCents).Scan(&newBalance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrConditionFailed
	}
	if err != nil {
		return 0, fmt.Errorf("failed to deduct balance: %w", err)
	}

	return newBalance, nil
}

func (r *accountRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CustomerID,
		&account.BalanceCents,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
