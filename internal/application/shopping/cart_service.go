package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shopping"
)

// CartStore persists carts keyed by an opaque session token. A missing
// session loads as an empty cart. Writes are last-writer-wins; carts are
// convenience state, not a ledger.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*shopping.Cart, error)
	Save(ctx context.Context, sessionID string, cart *shopping.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// CartService binds the cart store to the product catalog: mutations
// snapshot the product at its current effective price, reads re-validate
// the snapshot against the catalog.
type CartService struct {
	carts       CartStore
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(carts CartStore, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		carts:       carts,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get loads the cart for a session. Items whose product has since been
// removed or deactivated are dropped from the view (and from the stored
// cart, best effort).
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pruned := false
	for _, item := range cart.Items() {
		product, err := s.productRepo.FindByIDForStore(ctx, item.StoreID, item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				cart.RemoveItem(item.ProductID)
				pruned = true
				continue
			}
			return nil, err
		}
		if !product.IsActive() {
			cart.RemoveItem(item.ProductID)
			pruned = true
		}
	}

	if pruned {
		if err := s.carts.Save(ctx, sessionID, cart); err != nil {
			s.logger.Warn("failed to persist pruned cart",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}

	view := NewCartView(cart)
	return &view, nil
}

// AddItem adds a product to the session cart, merging quantity when the
// product is already present. The item snapshots the product's current
// effective price.
func (s *CartService) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (*CartView, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, req.StoreID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	}
	if product.Stock < 1 {
		return nil, shared.ErrInsufficientStock
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if urls := product.ImageURLs(); len(urls) > 0 {
		imageURL = urls[0]
	}
	cart.AddItem(shopping.CartItem{
		ProductID: product.ID,
		StoreID:   product.StoreID,
		Name:      product.Name,
		ImageURL:  imageURL,
		UnitPrice: product.EffectivePrice(),
		Quantity:  req.Quantity,
	})

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	view := NewCartView(cart)
	return &view, nil
}

// SetQuantity sets the quantity of a line item. Quantities below 1 leave
// the cart unchanged; removal is an explicit operation.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartView, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.SetQuantity(productID, quantity)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	view := NewCartView(cart)
	return &view, nil
}

// RemoveItem removes a line item from the session cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartView, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	view := NewCartView(cart)
	return &view, nil
}

// Clear empties the session cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}
