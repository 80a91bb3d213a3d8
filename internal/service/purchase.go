package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cupcade/vendpay/internal/db"
	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/repository"
	"github.com/google/uuid"
)

// PurchaseResult is the outcome of a committed purchase
type PurchaseResult struct {
	Payment         models.Payment
	NewBalanceCents int64
}

// PurchaseService settles purchases: it verifies funds, deducts the
// balance and appends the payment record, all-or-nothing
type PurchaseService struct {
	db *db.DB
}

// NewPurchaseService creates a new PurchaseService
func NewPurchaseService(database *db.DB) *PurchaseService {
	return &PurchaseService{db: database}
}

// Purchase charges the product's price against the account. The ledger
// write and the balance decrement commit together; a failure at any
// step leaves no visible effect.
func (s *PurchaseService) Purchase(ctx context.Context, accountID uuid.UUID, productID string) (*PurchaseResult, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)
	txProductRepo := repository.NewProductRepository(tx)
	txPaymentRepo := repository.NewPaymentRepository(tx)

	result, err := s.performPurchase(ctx, txAccountRepo, txProductRepo, txPaymentRepo, accountID, productID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return result, nil
}

// performPurchase contains the core purchase business logic
func (s *PurchaseService) performPurchase(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
	accountID uuid.UUID,
	productID string,
) (*PurchaseResult, error) {
	// The caller is responsible for having resolved a valid tag and
	// product; a missing record here is a broken precondition, not a
	// funds problem.
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to load product for purchase",
			Err:     err,
		}
	}

	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to load account for purchase",
			Err:     err,
		}
	}

	if account.BalanceCents < product.PriceCents {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "not enough money",
		}
	}

	newBalance, err := s.deduct(ctx, accountRepo, accountID, product.PriceCents)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		AccountID:   accountID,
		Date:        time.Now().UTC(),
		ProductID:   product.ProductID,
		ProductName: product.Name,
		Type:        product.Type,
		PriceCents:  product.PriceCents,
	}

	if err := paymentRepo.Create(ctx, &payment); err != nil {
		// Rolls back the decrement too; the purchase must never be
		// reported as success with a missing ledger entry.
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to record payment",
			Err:     err,
		}
	}

	return &PurchaseResult{
		Payment:         payment,
		NewBalanceCents: newBalance,
	}, nil
}

// deduct applies the conditional decrement. A rejected condition is
// re-verified against the current balance: a genuinely insufficient
// balance means a concurrent spend won the race, while a still-covered
// balance means unrelated contention and earns exactly one retry.
func (s *PurchaseService) deduct(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	accountID uuid.UUID,
	priceCents int64,
) (int64, error) {
	newBalance, err := accountRepo.DeductBalance(ctx, accountID, priceCents)
	if err == nil {
		return newBalance, nil
	}
	if !errors.Is(err, models.ErrConditionFailed) {
		return 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to deduct balance",
			Err:     err,
		}
	}

	account, rerr := accountRepo.FindByID(ctx, accountID)
	if rerr != nil {
		return 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to re-check balance after rejected decrement",
			Err:     rerr,
		}
	}

	if account.BalanceCents < priceCents {
		return 0, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "not enough money",
		}
	}

	newBalance, err = accountRepo.DeductBalance(ctx, accountID, priceCents)
	if errors.Is(err, models.ErrConditionFailed) {
		return 0, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "not enough money",
		}
	}
	if err != nil {
		return 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to deduct balance",
			Err:     err,
		}
	}

	return newBalance, nil
}
