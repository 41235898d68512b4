package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.conn(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDForStore finds a product by ID within a store
func (r *GormProductRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.conn(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySlug finds a product by its slug within a store
func (r *GormProductRepository) FindBySlug(ctx context.Context, storeID uuid.UUID, slug string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.conn(ctx).
		Where("store_id = ? AND slug = ?", storeID, strings.ToLower(slug)).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAllForStore finds all products for a store
func (r *GormProductRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(r.conn(ctx).Model(&catalog.Product{}).Where("store_id = ?", storeID), filter)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs finds multiple products by their IDs within a store
func (r *GormProductRepository) FindByIDs(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}

	var products []catalog.Product
	if err := r.conn(ctx).
		Where("store_id = ? AND id IN ?", storeID, ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory finds all products in a specific category
func (r *GormProductRepository) FindByCategory(ctx context.Context, storeID, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(
		r.conn(ctx).Model(&catalog.Product{}).
			Where("store_id = ? AND category_id = ?", storeID, categoryID),
		filter,
	)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindActive finds active products for a store in default ordering
func (r *GormProductRepository) FindActive(ctx context.Context, storeID uuid.UUID, limit int) ([]catalog.Product, error) {
	return r.findRanked(ctx, storeID, limit, "sort_order ASC, created_at DESC")
}

// FindBestSelling finds active products ordered by sales count descending
func (r *GormProductRepository) FindBestSelling(ctx context.Context, storeID uuid.UUID, limit int) ([]catalog.Product, error) {
	return r.findRanked(ctx, storeID, limit, "sales_count DESC, created_at DESC")
}

// FindNewest finds active products ordered by creation time descending
func (r *GormProductRepository) FindNewest(ctx context.Context, storeID uuid.UUID, limit int) ([]catalog.Product, error) {
	return r.findRanked(ctx, storeID, limit, "created_at DESC")
}

// FindFeatured finds active products flagged as featured
func (r *GormProductRepository) FindFeatured(ctx context.Context, storeID uuid.UUID, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.activeQuery(ctx, storeID).
		Where("featured = ?", true).
		Order("sort_order ASC, created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindOnSale finds active products carrying a discount price
func (r *GormProductRepository) FindOnSale(ctx context.Context, storeID uuid.UUID, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.activeQuery(ctx, storeID).
		Where("discount_price IS NOT NULL").
		Order("sort_order ASC, created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindTrending finds active products ordered by view count, breaking
// ties by sales count
func (r *GormProductRepository) FindTrending(ctx context.Context, storeID uuid.UUID, limit int) ([]catalog.Product, error) {
	return r.findRanked(ctx, storeID, limit, "view_count DESC, sales_count DESC")
}

// FindLowStock finds active products at or below the stock threshold
func (r *GormProductRepository) FindLowStock(ctx context.Context, storeID uuid.UUID, threshold int) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.activeQuery(ctx, storeID).
		Where("stock <= ?", threshold).
		Order("stock ASC, name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) findRanked(ctx context.Context, storeID uuid.UUID, limit int, order string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.activeQuery(ctx, storeID).
		Order(order).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) activeQuery(ctx context.Context, storeID uuid.UUID) *gorm.DB {
	return r.conn(ctx).Model(&catalog.Product{}).
		Where("store_id = ? AND status = ?", storeID, catalog.ProductStatusActive)
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.conn(ctx).Save(product).Error
}

// SaveBatch creates or updates multiple products
func (r *GormProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.conn(ctx).Save(products).Error
}

// DeleteForStore deletes a product within a store
func (r *GormProductRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&catalog.Product{}, "store_id = ? AND id = ?", storeID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForStore counts products for a store
func (r *GormProductRepository) CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.conn(ctx).Model(&catalog.Product{}).Where("store_id = ?", storeID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCategory counts products in a specific category
func (r *GormProductRepository) CountByCategory(ctx context.Context, storeID, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&catalog.Product{}).
		Where("store_id = ? AND category_id = ?", storeID, categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySlug checks if a product with the given slug exists in the store
func (r *GormProductRepository) ExistsBySlug(ctx context.Context, storeID uuid.UUID, slug string) (bool, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&catalog.Product{}).
		Where("store_id = ? AND slug = ?", storeID, strings.ToLower(slug)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("sort_order ASC, name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormProductRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category_id":
			if value == nil {
				query = query.Where("category_id IS NULL")
			} else {
				query = query.Where("category_id = ?", value)
			}
		case "featured":
			query = query.Where("featured = ?", value)
		case "min_price":
			query = query.Where("price >= ?", value)
		case "max_price":
			query = query.Where("price <= ?", value)
		case "on_sale":
			if value == true {
				query = query.Where("discount_price IS NOT NULL")
			} else {
				query = query.Where("discount_price IS NULL")
			}
		}
	}

	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
