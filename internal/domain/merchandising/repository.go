package merchandising

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// SectionRepository defines the interface for section persistence
type SectionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Section, error)

	// FindAllForStore finds all sections for a store ordered by sort order
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Section, error)

	// FindActiveForStore finds active sections for a store in ascending
	// sort order. This ordering is what makes the storefront aggregation
	// deterministic, so implementations must not reorder.
	FindActiveForStore(ctx context.Context, storeID uuid.UUID) ([]Section, error)

	Save(ctx context.Context, section *Section) error
	SaveBatch(ctx context.Context, sections []*Section) error
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
}

// BannerRepository defines the interface for banner persistence
type BannerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Banner, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Banner, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Banner, error)
	FindActiveForStore(ctx context.Context, storeID uuid.UUID) ([]Banner, error)
	Save(ctx context.Context, banner *Banner) error
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
}
