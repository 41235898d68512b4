package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

func newBrowseService(storeRepo *MockStoreRepository, productRepo *MockProductRepository, categoryRepo *MockCategoryRepository, bannerRepo *MockBannerRepository) *BrowseService {
	return NewBrowseService(storeRepo, productRepo, categoryRepo, bannerRepo, zap.NewNop())
}

func TestStoreBySlug(t *testing.T) {
	t.Run("resolves active store", func(t *testing.T) {
		store, err := identity.NewStore("Acme", "acme", "USD")
		require.NoError(t, err)

		storeRepo := new(MockStoreRepository)
		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)

		svc := newBrowseService(storeRepo, new(MockProductRepository), new(MockCategoryRepository), new(MockBannerRepository))
		view, err := svc.StoreBySlug(context.Background(), " Acme ")
		require.NoError(t, err)
		assert.Equal(t, "acme", view.Slug)
		assert.Equal(t, "USD", view.CurrencyCode)
	})

	t.Run("suspended store reads as not found", func(t *testing.T) {
		store, err := identity.NewStore("Acme", "acme", "USD")
		require.NoError(t, err)
		require.NoError(t, store.Suspend())

		storeRepo := new(MockStoreRepository)
		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)

		svc := newBrowseService(storeRepo, new(MockProductRepository), new(MockCategoryRepository), new(MockBannerRepository))
		_, err = svc.StoreBySlug(context.Background(), "acme")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductBySlug(t *testing.T) {
	storeID := uuid.New()

	t.Run("records a view", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", "mug")

		productRepo := new(MockProductRepository)
		productRepo.On("FindBySlug", mock.Anything, storeID, "mug").Return(&product, nil)
		productRepo.On("Save", mock.Anything, &product).Return(nil)

		svc := newBrowseService(new(MockStoreRepository), productRepo, new(MockCategoryRepository), new(MockBannerRepository))
		view, err := svc.ProductBySlug(context.Background(), storeID, "mug")
		require.NoError(t, err)
		assert.Equal(t, "Mug", view.Name)
		assert.Equal(t, 1, product.ViewCount)
	})

	t.Run("view persistence failure does not fail the read", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", "mug")

		productRepo := new(MockProductRepository)
		productRepo.On("FindBySlug", mock.Anything, storeID, "mug").Return(&product, nil)
		productRepo.On("Save", mock.Anything, &product).Return(errors.New("deadlock"))

		svc := newBrowseService(new(MockStoreRepository), productRepo, new(MockCategoryRepository), new(MockBannerRepository))
		_, err := svc.ProductBySlug(context.Background(), storeID, "mug")
		assert.NoError(t, err)
	})

	t.Run("inactive product reads as not found", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", "mug")
		product.Deactivate()

		productRepo := new(MockProductRepository)
		productRepo.On("FindBySlug", mock.Anything, storeID, "mug").Return(&product, nil)

		svc := newBrowseService(new(MockStoreRepository), productRepo, new(MockCategoryRepository), new(MockBannerRepository))
		_, err := svc.ProductBySlug(context.Background(), storeID, "mug")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSearchProductsSkipsInactive(t *testing.T) {
	storeID := uuid.New()
	active := newTestProduct(t, storeID, "Red Mug", "red-mug")
	hidden := newTestProduct(t, storeID, "Blue Mug", "blue-mug")
	hidden.Deactivate()

	productRepo := new(MockProductRepository)
	productRepo.On("FindAllForStore", mock.Anything, storeID, mock.Anything).
		Return([]catalog.Product{active, hidden}, nil)

	svc := newBrowseService(new(MockStoreRepository), productRepo, new(MockCategoryRepository), new(MockBannerRepository))
	views, err := svc.SearchProducts(context.Background(), storeID, "mug", shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Red Mug", views[0].Name)
}
