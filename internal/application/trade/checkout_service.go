package trade

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// OrderNumberFunc generates a unique human-readable order number.
type OrderNumberFunc func() string

// DefaultOrderNumber generates numbers like ORD-20260828-3f9a2c.
func DefaultOrderNumber() string {
	var suffix [3]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), hex.EncodeToString(suffix[:]))
}

// CheckoutService turns a session cart into an order for one store.
// Stock is decremented and sales counts incremented in the same
// transaction that creates the order, so a failed line rolls the whole
// checkout back.
type CheckoutService struct {
	carts        shopping.CartStore
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	orderRepo    trade.OrderRepository
	tx           shared.TransactionManager
	orderNumber  OrderNumberFunc
	logger       *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	carts shopping.CartStore,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	orderRepo trade.OrderRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:        carts,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		tx:           tx,
		orderNumber:  DefaultOrderNumber,
		logger:       logger,
	}
}

// SetOrderNumberFunc overrides order number generation.
func (s *CheckoutService) SetOrderNumberFunc(fn OrderNumberFunc) {
	s.orderNumber = fn
}

// Checkout places an order for the given store's lines of the session
// cart. On success the store's lines are removed from the cart; lines
// belonging to other stores stay untouched.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, customerID uuid.UUID, req CheckoutRequest) (*OrderResponse, error) {
	customer, err := s.customerRepo.FindByIDForStore(ctx, req.StoreID, customerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, shared.ErrForbidden
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines := cart.ItemsForStore(req.StoreID)
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cart has no items for this store")
	}

	order, err := trade.NewOrder(req.StoreID, customerID, s.orderNumber(), req.Address.toDomain(), decimal.Zero, req.Note)
	if err != nil {
		return nil, err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		for _, line := range lines {
			product, err := s.productRepo.FindByIDForStore(ctx, req.StoreID, line.ProductID)
			if err != nil {
				return err
			}
			if !product.IsActive() {
				return shared.NewDomainError("PRODUCT_UNAVAILABLE",
					fmt.Sprintf("%s is no longer available", line.Name))
			}
			// RecordSale enforces the stock check.
			if err := product.RecordSale(line.Quantity); err != nil {
				return err
			}
			if err := s.productRepo.Save(ctx, product); err != nil {
				return err
			}
			if err := order.AddItem(product.ID, line.Name, line.ImageURL, line.UnitPrice, line.Quantity); err != nil {
				return err
			}
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	// The cart is convenience state; failing to clear it does not undo
	// the placed order.
	cart.ClearStore(req.StoreID)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.String("order_number", order.OrderNumber),
			zap.Error(err))
	}

	return NewOrderResponse(order), nil
}
