package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormStoreRepository implements StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Store, error) {
	var store identity.Store
	if err := r.conn(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindBySlug finds a store by its slug
func (r *GormStoreRepository) FindBySlug(ctx context.Context, slug string) (*identity.Store, error) {
	var store identity.Store
	if err := r.conn(ctx).
		Where("slug = ?", strings.ToLower(slug)).
		First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindAll finds stores matching the filter
func (r *GormStoreRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*identity.Store], error) {
	query := r.conn(ctx).Model(&identity.Store{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ?", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*identity.Store]{}, err
	}

	page := filter.Page
	pageSize := filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var stores []*identity.Store
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&stores).Error; err != nil {
		return shared.Paginated[*identity.Store]{}, err
	}

	return shared.NewPaginated(stores, total, page, pageSize), nil
}

// ExistsBySlug checks if a store with the given slug exists
func (r *GormStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&identity.Store{}).
		Where("slug = ?", strings.ToLower(slug)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, store *identity.Store) error {
	return r.conn(ctx).Save(store).Error
}

// Ensure GormStoreRepository implements StoreRepository
var _ identity.StoreRepository = (*GormStoreRepository)(nil)
