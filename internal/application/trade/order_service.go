package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// OrderService handles dashboard and customer order reads plus status changes
type OrderService struct {
	orderRepo   trade.OrderRepository
	productRepo catalog.ProductRepository
	tx          shared.TransactionManager
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, productRepo catalog.ProductRepository, tx shared.TransactionManager) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		tx:          tx,
	}
}

// Get returns an order for the dashboard
func (s *OrderService) Get(ctx context.Context, storeID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}
	return NewOrderResponse(order), nil
}

// List returns the store's orders with pagination, optionally filtered by status
func (s *OrderService) List(ctx context.Context, storeID uuid.UUID, status string, filter shared.Filter) (shared.Paginated[*OrderResponse], error) {
	var (
		page shared.Paginated[*trade.Order]
		err  error
	)
	if status != "" {
		orderStatus := trade.OrderStatus(status)
		if !orderStatus.IsValid() {
			return shared.Paginated[*OrderResponse]{}, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		page, err = s.orderRepo.FindByStatusForStore(ctx, storeID, orderStatus, filter)
	} else {
		page, err = s.orderRepo.FindAllForStore(ctx, storeID, filter)
	}
	if err != nil {
		return shared.Paginated[*OrderResponse]{}, err
	}
	return mapOrderPage(page, filter), nil
}

// ListForCustomer returns a customer's own orders
func (s *OrderService) ListForCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[*OrderResponse], error) {
	page, err := s.orderRepo.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return shared.Paginated[*OrderResponse]{}, err
	}
	return mapOrderPage(page, filter), nil
}

// GetForCustomer returns one of the customer's own orders
func (s *OrderService) GetForCustomer(ctx context.Context, customerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, shared.ErrNotFound
	}
	return NewOrderResponse(order), nil
}

// UpdateStatus moves an order through its lifecycle from the dashboard.
// Cancelling a pending order restores the stock it had claimed.
func (s *OrderService) UpdateStatus(ctx context.Context, storeID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	target := trade.OrderStatus(req.Status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}

	restoreStock := target == trade.OrderStatusCancelled

	switch target {
	case trade.OrderStatusPaid:
		err = order.MarkPaid()
	case trade.OrderStatusShipped:
		err = order.MarkShipped()
	case trade.OrderStatusDelivered:
		err = order.MarkDelivered()
	case trade.OrderStatusCancelled:
		err = order.Cancel(req.Reason)
	default:
		err = shared.NewDomainError("INVALID_STATUS_TRANSITION", "Orders cannot return to pending")
	}
	if err != nil {
		return nil, err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if restoreStock {
			for _, item := range order.Items {
				product, err := s.productRepo.FindByIDForStore(ctx, storeID, item.ProductID)
				if err != nil {
					// Deleted products cannot take stock back.
					if shared.IsNotFound(err) {
						continue
					}
					return err
				}
				if err := product.RestoreStock(item.Quantity); err != nil {
					return err
				}
				if err := s.productRepo.Save(ctx, product); err != nil {
					return err
				}
			}
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return NewOrderResponse(order), nil
}

func mapOrderPage(page shared.Paginated[*trade.Order], filter shared.Filter) shared.Paginated[*OrderResponse] {
	responses := make([]*OrderResponse, 0, len(page.Items))
	for _, order := range page.Items {
		responses = append(responses, NewOrderResponse(order))
	}
	return shared.NewPaginated(responses, page.Total, filter.Page, filter.PageSize)
}
