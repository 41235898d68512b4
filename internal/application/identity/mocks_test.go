package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// MockStoreRepository is a mock implementation of identity.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindBySlug(ctx context.Context, slug string) (*identity.Store, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*identity.Store], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*identity.Store]), args.Error(1)
}

func (m *MockStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, store *identity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, storeID uuid.UUID, email string) (*identity.User, error) {
	args := m.Called(ctx, storeID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*identity.User], error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(shared.Paginated[*identity.User]), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, storeID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, storeID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}
