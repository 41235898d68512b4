package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
)

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, storeID uuid.UUID, email string) (*partner.Customer, error) {
	args := m.Called(ctx, storeID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*partner.Customer], error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(shared.Paginated[*partner.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, storeID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, storeID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}
