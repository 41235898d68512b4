package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// MockPaymentRepository is a mock implementation of finance.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*finance.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindConfirmedByOrder(ctx context.Context, orderID uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*finance.Payment], error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(shared.Paginated[*finance.Payment]), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(shared.Paginated[*trade.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).(shared.Paginated[*trade.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindByStatusForStore(ctx context.Context, storeID uuid.UUID, status trade.OrderStatus, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	args := m.Called(ctx, storeID, status, filter)
	return args.Get(0).(shared.Paginated[*trade.Order]), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatusForStore(ctx context.Context, storeID uuid.UUID, status trade.OrderStatus) (int64, error) {
	args := m.Called(ctx, storeID, status)
	return args.Get(0).(int64), args.Error(1)
}
