package service

import (
	"context"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/repository"
	"github.com/google/uuid"
)

// PaymentService reads purchase history from the append-only ledger
type PaymentService struct {
	payments     repository.PaymentRepository
	defaultLimit int
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(payments repository.PaymentRepository, defaultLimit int) *PaymentService {
	return &PaymentService{
		payments:     payments,
		defaultLimit: defaultLimit,
	}
}

// List returns up to limit payments for the account, newest first.
// A non-positive limit falls back to the configured default.
func (s *PaymentService) List(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Payment, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	payments, err := s.payments.ListRecent(ctx, accountID, limit)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to list payments",
			Err:     err,
		}
	}

	return payments, nil
}
