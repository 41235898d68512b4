package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/merchandising"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormBannerRepository implements BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

func (r *GormBannerRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a banner by its ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*merchandising.Banner, error) {
	var banner merchandising.Banner
	if err := r.conn(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// FindByIDForStore finds a banner by ID within a store
func (r *GormBannerRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*merchandising.Banner, error) {
	var banner merchandising.Banner
	if err := r.conn(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&banner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// FindAllForStore finds all banners for a store
func (r *GormBannerRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]merchandising.Banner, error) {
	var banners []merchandising.Banner
	query := r.conn(ctx).Model(&merchandising.Banner{}).Where("store_id = ?", storeID)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("sort_order ASC, created_at ASC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// FindActiveForStore finds active banners for a store in sort order
func (r *GormBannerRepository) FindActiveForStore(ctx context.Context, storeID uuid.UUID) ([]merchandising.Banner, error) {
	var banners []merchandising.Banner
	if err := r.conn(ctx).
		Where("store_id = ? AND active = ?", storeID, true).
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Save creates or updates a banner
func (r *GormBannerRepository) Save(ctx context.Context, banner *merchandising.Banner) error {
	return r.conn(ctx).Save(banner).Error
}

// DeleteForStore deletes a banner within a store
func (r *GormBannerRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&merchandising.Banner{}, "store_id = ? AND id = ?", storeID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormBannerRepository implements BannerRepository
var _ merchandising.BannerRepository = (*GormBannerRepository)(nil)
