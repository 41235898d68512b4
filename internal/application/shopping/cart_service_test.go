package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
)

// memoryCartStore is a map-backed CartStore for tests.
type memoryCartStore struct {
	carts map[string][]shopping.CartItem
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: make(map[string][]shopping.CartItem)}
}

func (s *memoryCartStore) Load(_ context.Context, sessionID string) (*shopping.Cart, error) {
	return shopping.RestoreCart(s.carts[sessionID]), nil
}

func (s *memoryCartStore) Save(_ context.Context, sessionID string, cart *shopping.Cart) error {
	s.carts[sessionID] = cart.Snapshot()
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

func newTestProduct(t *testing.T, storeID uuid.UUID, name string, price int64, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(storeID, name, "p-"+uuid.NewString()[:8], decimal.NewFromInt(price))
	require.NoError(t, err)
	product.SetStock(stock)
	return product
}

func TestCartServiceAddItem(t *testing.T) {
	storeID := uuid.New()
	session := "sess-1"

	t.Run("adding the same product twice merges quantity", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", 10, 5)
		productRepo := new(MockProductRepository)
		productRepo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)

		svc := NewCartService(newMemoryCartStore(), productRepo, zap.NewNop())
		req := AddItemRequest{StoreID: storeID, ProductID: product.ID, Quantity: 1}

		_, err := svc.AddItem(context.Background(), session, req)
		require.NoError(t, err)
		view, err := svc.AddItem(context.Background(), session, req)
		require.NoError(t, err)

		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.True(t, view.Subtotal.Equal(decimal.NewFromInt(20)))
	})

	t.Run("snapshots the discounted price", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", 10, 5)
		discount := decimal.NewFromInt(7)
		require.NoError(t, product.SetDiscountPrice(&discount))

		productRepo := new(MockProductRepository)
		productRepo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)

		svc := NewCartService(newMemoryCartStore(), productRepo, zap.NewNop())
		view, err := svc.AddItem(context.Background(), session, AddItemRequest{StoreID: storeID, ProductID: product.ID, Quantity: 1})
		require.NoError(t, err)
		assert.True(t, view.Items[0].UnitPrice.Equal(discount))
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", 10, 5)
		product.Deactivate()
		productRepo := new(MockProductRepository)
		productRepo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)

		svc := NewCartService(newMemoryCartStore(), productRepo, zap.NewNop())
		_, err := svc.AddItem(context.Background(), session, AddItemRequest{StoreID: storeID, ProductID: product.ID, Quantity: 1})
		assert.Error(t, err)
	})

	t.Run("rejects out of stock product", func(t *testing.T) {
		product := newTestProduct(t, storeID, "Mug", 10, 0)
		productRepo := new(MockProductRepository)
		productRepo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)

		svc := NewCartService(newMemoryCartStore(), productRepo, zap.NewNop())
		_, err := svc.AddItem(context.Background(), session, AddItemRequest{StoreID: storeID, ProductID: product.ID, Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})
}

func TestCartServiceSetQuantity(t *testing.T) {
	storeID := uuid.New()
	session := "sess-2"
	product := newTestProduct(t, storeID, "Mug", 10, 5)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)

	svc := NewCartService(newMemoryCartStore(), productRepo, zap.NewNop())
	_, err := svc.AddItem(context.Background(), session, AddItemRequest{StoreID: storeID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	t.Run("sets quantity", func(t *testing.T) {
		view, err := svc.SetQuantity(context.Background(), session, product.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, view.Items[0].Quantity)
	})

	t.Run("quantities below one leave the cart unchanged", func(t *testing.T) {
		view, err := svc.SetQuantity(context.Background(), session, product.ID, 0)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 5, view.Items[0].Quantity)
	})
}

func TestCartServiceGetPrunesDeadItems(t *testing.T) {
	storeID := uuid.New()
	session := "sess-3"
	alive := newTestProduct(t, storeID, "Mug", 10, 5)
	gone := newTestProduct(t, storeID, "Plate", 8, 5)

	store := newMemoryCartStore()
	store.carts[session] = []shopping.CartItem{
		{ProductID: alive.ID, StoreID: storeID, Name: "Mug", UnitPrice: decimal.NewFromInt(10), Quantity: 1},
		{ProductID: gone.ID, StoreID: storeID, Name: "Plate", UnitPrice: decimal.NewFromInt(8), Quantity: 2},
	}

	productRepo := new(MockProductRepository)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, alive.ID).Return(alive, nil)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, gone.ID).Return(nil, shared.ErrNotFound)

	svc := NewCartService(store, productRepo, zap.NewNop())
	view, err := svc.Get(context.Background(), session)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, alive.ID, view.Items[0].ProductID)
	assert.Len(t, store.carts[session], 1, "pruned cart is persisted")
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	storeID := uuid.New()
	session := "sess-4"
	product := newTestProduct(t, storeID, "Mug", 10, 5)

	productRepo := new(MockProductRepository)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, product.ID).Return(product, nil)

	store := newMemoryCartStore()
	svc := NewCartService(store, productRepo, zap.NewNop())
	_, err := svc.AddItem(context.Background(), session, AddItemRequest{StoreID: storeID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	view, err := svc.RemoveItem(context.Background(), session, product.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	require.NoError(t, svc.Clear(context.Background(), session))
	_, ok := store.carts[session]
	assert.False(t, ok)
}
