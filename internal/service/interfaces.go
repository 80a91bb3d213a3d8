package service

import (
	"context"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// TagResolver maps a presented tag number to its owning tag record
type TagResolver interface {
	Resolve(ctx context.Context, tagNumber string) (*models.Tag, error)
}

// TagDirectory handles tag lifecycle operations for an account
type TagDirectory interface {
	TagResolver
	Create(ctx context.Context, accountID uuid.UUID, tagNumber, name string, preference *string) (*models.Tag, error)
	List(ctx context.Context, accountID uuid.UUID) ([]models.Tag, error)
	Delete(ctx context.Context, accountID uuid.UUID, tagNumber string) error
}

// ProductSelector picks exactly one candidate to purchase
type ProductSelector interface {
	Select(ctx context.Context, tag *models.Tag, candidates []models.ProductCandidate) (models.ProductCandidate, error)
}

// Purchaser settles purchases against account balances
type Purchaser interface {
	Purchase(ctx context.Context, accountID uuid.UUID, productID string) (*PurchaseResult, error)
}

// PaymentLister reads recent payment history
type PaymentLister interface {
	List(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Payment, error)
}

// AccountDirectory handles registration, login and account lookup
type AccountDirectory interface {
	Register(ctx context.Context, email, password, customerID string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (uuid.UUID, error)
	Get(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
}

// DevicePayer orchestrates the full device pay flow
type DevicePayer interface {
	Pay(ctx context.Context, req DevicePayRequest) (*DevicePayResult, error)
}

// Ensure concrete types implement interfaces
var (
	_ TagDirectory     = (*TagService)(nil)
	_ ProductSelector  = (*SelectorService)(nil)
	_ Purchaser        = (*PurchaseService)(nil)
	_ PaymentLister    = (*PaymentService)(nil)
	_ AccountDirectory = (*AccountService)(nil)
	_ DevicePayer      = (*DeviceService)(nil)
)
