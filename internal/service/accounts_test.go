package service

import (
	"context"
	"testing"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/repository/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(accounts *mocks.MockAccountRepository) *AccountService {
	return NewAccountService(accounts, "844D1532074B04", 1000, bcrypt.MinCost)
}

func TestAccountService_Register(t *testing.T) {
	t.Run("creates account with hashed password and defaults", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		var created *models.Account
		mockAccounts.On("Create", ctx, mock.AnythingOfType("*models.Account")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Account)
			}).
			Return(nil)

		accountID, err := svc.Register(ctx, "kim@example.com", "hunter2", "")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, accountID)
		assert.Equal(t, "kim@example.com", created.Email)
		assert.Equal(t, "844D1532074B04", created.CustomerID)
		assert.Equal(t, int64(1000), created.BalanceCents)
		assert.NotEqual(t, "hunter2", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2")))
	})

	t.Run("explicit customer id preserved", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		var created *models.Account
		mockAccounts.On("Create", ctx, mock.AnythingOfType("*models.Account")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Account)
			}).
			Return(nil)

		_, err := svc.Register(ctx, "kim@example.com", "hunter2", "CUST-42")

		require.NoError(t, err)
		assert.Equal(t, "CUST-42", created.CustomerID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		mockAccounts.On("Create", ctx, mock.AnythingOfType("*models.Account")).
			Return(models.ErrDuplicate)

		_, err := svc.Register(ctx, "kim@example.com", "hunter2", "")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeEmailTaken, svcErr.Code)
	})
}

func TestAccountService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	accountID := uuid.New()
	account := &models.Account{
		ID:           accountID,
		Email:        "kim@example.com",
		PasswordHash: string(hash),
	}

	t.Run("correct credentials", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		mockAccounts.On("FindByEmail", ctx, "kim@example.com").Return(account, nil)

		got, err := svc.Login(ctx, "kim@example.com", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, accountID, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		mockAccounts.On("FindByEmail", ctx, "kim@example.com").Return(account, nil)

		_, err := svc.Login(ctx, "kim@example.com", "wrong")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidCredentials, svcErr.Code)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		mockAccounts.On("FindByEmail", ctx, "nobody@example.com").Return(nil, models.ErrNotFound)

		_, err := svc.Login(ctx, "nobody@example.com", "hunter2")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidCredentials, svcErr.Code)
	})
}

func TestAccountService_Get(t *testing.T) {
	t.Run("unknown account maps to account_not_found", func(t *testing.T) {
		mockAccounts := mocks.NewMockAccountRepository(t)
		svc := newAccountService(mockAccounts)
		ctx := context.Background()

		missing := uuid.New()
		mockAccounts.On("FindByID", ctx, missing).Return(nil, models.ErrNotFound)

		_, err := svc.Get(ctx, missing)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
	})
}
