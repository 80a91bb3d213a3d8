// Package mocks provides hand-maintained testify mocks for the service
// interfaces. Keep method signatures in sync with the interfaces in
// internal/service.
package mocks

import (
	"context"

	"github.com/cupcade/vendpay/internal/models"
	"github.com/cupcade/vendpay/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTagResolver mocks service.TagResolver
type MockTagResolver struct {
	mock.Mock
}

// NewMockTagResolver creates a mock that asserts its expectations on cleanup
func NewMockTagResolver(t testingT) *MockTagResolver {
	m := &MockTagResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTagResolver) Resolve(ctx context.Context, tagNumber string) (*models.Tag, error) {
	args := m.Called(ctx, tagNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

// MockTagDirectory mocks service.TagDirectory
type MockTagDirectory struct {
	MockTagResolver
}

// NewMockTagDirectory creates a mock that asserts its expectations on cleanup
func NewMockTagDirectory(t testingT) *MockTagDirectory {
	m := &MockTagDirectory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTagDirectory) Create(ctx context.Context, accountID uuid.UUID, tagNumber, name string, preference *string) (*models.Tag, error) {
	args := m.Called(ctx, accountID, tagNumber, name, preference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagDirectory) List(ctx context.Context, accountID uuid.UUID) ([]models.Tag, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagDirectory) Delete(ctx context.Context, accountID uuid.UUID, tagNumber string) error {
	args := m.Called(ctx, accountID, tagNumber)
	return args.Error(0)
}

// MockProductSelector mocks service.ProductSelector
type MockProductSelector struct {
	mock.Mock
}

// NewMockProductSelector creates a mock that asserts its expectations on cleanup
func NewMockProductSelector(t testingT) *MockProductSelector {
	m := &MockProductSelector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductSelector) Select(ctx context.Context, tag *models.Tag, candidates []models.ProductCandidate) (models.ProductCandidate, error) {
	args := m.Called(ctx, tag, candidates)
	return args.Get(0).(models.ProductCandidate), args.Error(1)
}

// MockPurchaser mocks service.Purchaser
type MockPurchaser struct {
	mock.Mock
}

// NewMockPurchaser creates a mock that asserts its expectations on cleanup
func NewMockPurchaser(t testingT) *MockPurchaser {
	m := &MockPurchaser{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPurchaser) Purchase(ctx context.Context, accountID uuid.UUID, productID string) (*service.PurchaseResult, error) {
	args := m.Called(ctx, accountID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PurchaseResult), args.Error(1)
}

// MockPaymentLister mocks service.PaymentLister
type MockPaymentLister struct {
	mock.Mock
}

// NewMockPaymentLister creates a mock that asserts its expectations on cleanup
func NewMockPaymentLister(t testingT) *MockPaymentLister {
	m := &MockPaymentLister{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentLister) List(ctx context.Context, accountID uuid.UUID, limit int) ([]models.Payment, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

// MockAccountDirectory mocks service.AccountDirectory
type MockAccountDirectory struct {
	mock.Mock
}

// NewMockAccountDirectory creates a mock that asserts its expectations on cleanup
func NewMockAccountDirectory(t testingT) *MockAccountDirectory {
	m := &MockAccountDirectory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountDirectory) Register(ctx context.Context, email, password, customerID string) (uuid.UUID, error) {
	args := m.Called(ctx, email, password, customerID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAccountDirectory) Login(ctx context.Context, email, password string) (uuid.UUID, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAccountDirectory) Get(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockDevicePayer mocks service.DevicePayer
type MockDevicePayer struct {
	mock.Mock
}

// NewMockDevicePayer creates a mock that asserts its expectations on cleanup
func NewMockDevicePayer(t testingT) *MockDevicePayer {
	m := &MockDevicePayer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDevicePayer) Pay(ctx context.Context, req service.DevicePayRequest) (*service.DevicePayResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DevicePayResult), args.Error(1)
}

// MockHealthChecker mocks service.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

// NewMockHealthChecker creates a mock that asserts its expectations on cleanup
func NewMockHealthChecker(t testingT) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHealthChecker) PingContext(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
