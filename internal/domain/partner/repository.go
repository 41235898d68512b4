package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerRepository provides persistence for storefront customer accounts.
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, storeID uuid.UUID, email string) (*Customer, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*Customer], error)
	ExistsByEmail(ctx context.Context, storeID uuid.UUID, email string) (bool, error)
	Save(ctx context.Context, customer *Customer) error
	CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}
