package merchandising

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storefront/backend/internal/domain/merchandising"
	"github.com/storefront/backend/internal/domain/shared"
)

// MockSectionRepository is a mock implementation of merchandising.SectionRepository
type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*merchandising.Section, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchandising.Section), args.Error(1)
}

func (m *MockSectionRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*merchandising.Section, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchandising.Section), args.Error(1)
}

func (m *MockSectionRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]merchandising.Section, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]merchandising.Section), args.Error(1)
}

func (m *MockSectionRepository) FindActiveForStore(ctx context.Context, storeID uuid.UUID) ([]merchandising.Section, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]merchandising.Section), args.Error(1)
}

func (m *MockSectionRepository) Save(ctx context.Context, section *merchandising.Section) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockSectionRepository) SaveBatch(ctx context.Context, sections []*merchandising.Section) error {
	args := m.Called(ctx, sections)
	return args.Error(0)
}

func (m *MockSectionRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}

// MockBannerRepository is a mock implementation of merchandising.BannerRepository
type MockBannerRepository struct {
	mock.Mock
}

func (m *MockBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*merchandising.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchandising.Banner), args.Error(1)
}

func (m *MockBannerRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*merchandising.Banner, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchandising.Banner), args.Error(1)
}

func (m *MockBannerRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]merchandising.Banner, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]merchandising.Banner), args.Error(1)
}

func (m *MockBannerRepository) FindActiveForStore(ctx context.Context, storeID uuid.UUID) ([]merchandising.Banner, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]merchandising.Banner), args.Error(1)
}

func (m *MockBannerRepository) Save(ctx context.Context, banner *merchandising.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockBannerRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}
