package service

import (
	"context"
	"errors"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, login and account lookup
type AccountService struct {
	accounts            repository.AccountRepository
	defaultCustomerID   string
	initialBalanceCents int64
	bcryptCost          int
}

// NewAccountService creates a new AccountService
func NewAccountService(
	accounts repository.AccountRepository,
	defaultCustomerID string,
	initialBalanceCents int64,
	bcryptCost int,
) *AccountService {
	return &AccountService{
		accounts:            accounts,
		defaultCustomerID:   defaultCustomerID,
		initialBalanceCents: initialBalanceCents,
		bcryptCost:          bcryptCost,
	}
}

// Register creates a new account with a hashed password and the
// configured starting balance. Duplicate emails are rejected.
func (s *AccountService) Register(ctx context.Context, email, password, customerID string) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return uuid.Nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to hash password",
			Err:     err,
		}
	}

	if customerID == "" {
		customerID = s.defaultCustomerID
	}

	account := &models.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CustomerID:   customerID,
		BalanceCents: s.initialBalanceCents,
	}

	err = s.accounts.Create(ctx, account)
	if errors.Is(err, models.ErrDuplicate) {
		return uuid.Nil, &ServiceError{
			Code:    ErrCodeEmailTaken,
			Message: "account already exists",
		}
	}
	if err != nil {
		return uuid.Nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to create account",
			Err:     err,
		}
	}

	return account.ID, nil
}

// Login verifies credentials and returns the account id. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (uuid.UUID, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return uuid.Nil, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "wrong email or password",
		}
	}
	if err != nil {
		return uuid.Nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to load account",
			Err:     err,
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "wrong email or password",
		}
	}

	return account.ID, nil
}

// Get retrieves an account by id
func (s *AccountService) Get(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "invalid account",
		}
	}
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to load account",
			Err:     err,
		}
	}

	return account, nil
}
