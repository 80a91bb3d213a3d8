package repository

import (
	"context"
	"fmt"

	"github.com/cupcade/vendpay/internal/db"
	"github.com/cupcade/vendpay/internal/models"
	"github.com/google/uuid"
)

// PaymentRepository defines access to the append-only payment ledger
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	// ListRecent returns up to limit payments for the account, newest first.
	ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Payment, error)
}

type paymentRepository struct {
	q db.Querier
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(q db.Querier) PaymentRepository {
	return &paymentRepository{q: q}
}

// Create appends a payment record to the ledger
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (account_id, date, product_id, product_name, type, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.AccountID,
		payment.Date,
		payment.ProductID,
		payment.ProductName,
		payment.Type,
		payment.PriceCents,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// ListRecent returns the most recent payments for an account
func (r *paymentRepository) ListRecent(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Payment, error) {
	query := `
		SELECT account_id, date, product_id, product_name, type, price_cents
		FROM payments
		WHERE account_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := r.q.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable here

	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.AccountID,
			&payment.Date,
			&payment.ProductID,
			&payment.ProductName,
			&payment.Type,
			&payment.PriceCents,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
