package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// PaymentRepository provides persistence for order payments.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Payment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*Payment, error)
	FindConfirmedByOrder(ctx context.Context, orderID uuid.UUID) (*Payment, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*Payment], error)
	Save(ctx context.Context, payment *Payment) error
}
