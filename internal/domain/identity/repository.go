package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// StoreRepository provides persistence for merchant stores.
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	FindBySlug(ctx context.Context, slug string) (*Store, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Store], error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, store *Store) error
}

// UserRepository provides persistence for merchant dashboard users.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, storeID uuid.UUID, email string) (*User, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*User], error)
	ExistsByEmail(ctx context.Context, storeID uuid.UUID, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
}
