package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// OrderRepository provides persistence for customer orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*Order], error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[*Order], error)
	FindByStatusForStore(ctx context.Context, storeID uuid.UUID, status OrderStatus, filter shared.Filter) (shared.Paginated[*Order], error)
	Save(ctx context.Context, order *Order) error
	CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	CountByStatusForStore(ctx context.Context, storeID uuid.UUID, status OrderStatus) (int64, error)
}
