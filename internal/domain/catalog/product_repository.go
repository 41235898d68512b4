package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDForStore finds a product by ID within a store
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Product, error)

	// FindBySlug finds a product by its slug within a store
	FindBySlug(ctx context.Context, storeID uuid.UUID, slug string) (*Product, error)

	// FindAllForStore finds all products for a store
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindByIDs finds multiple products by their IDs within a store
	FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// FindByCategory finds all products in a specific category
	FindByCategory(ctx context.Context, storeID, categoryID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindActive finds active products for a store, default ordering
	FindActive(ctx context.Context, storeID uuid.UUID, limit int) ([]Product, error)

	// FindBestSelling finds active products ordered by sales count descending
	FindBestSelling(ctx context.Context, storeID uuid.UUID, limit int) ([]Product, error)

	// FindNewest finds active products ordered by creation time descending
	FindNewest(ctx context.Context, storeID uuid.UUID, limit int) ([]Product, error)

	// FindFeatured finds active products flagged as featured
	FindFeatured(ctx context.Context, storeID uuid.UUID, limit int) ([]Product, error)

	// FindOnSale finds active products carrying a discount price
	FindOnSale(ctx context.Context, storeID uuid.UUID, limit int) ([]Product, error)

	// FindTrending finds active products ordered by view count descending,
	// breaking ties by sales count
	FindTrending(ctx context.Context, storeID uuid.UUID, limit int) ([]Product, error)

	// FindLowStock finds active products at or below the stock threshold
	FindLowStock(ctx context.Context, storeID uuid.UUID, threshold int) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveBatch creates or updates multiple products
	SaveBatch(ctx context.Context, products []*Product) error

	// DeleteForStore deletes a product within a store
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error

	// CountForStore counts products for a store
	CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByCategory counts products in a specific category
	CountByCategory(ctx context.Context, storeID, categoryID uuid.UUID) (int64, error)

	// ExistsBySlug checks if a product with the given slug exists in the store
	ExistsBySlug(ctx context.Context, storeID uuid.UUID, slug string) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, storeID uuid.UUID, slug string) (*Category, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, storeID uuid.UUID, slug string) (bool, error)
}
