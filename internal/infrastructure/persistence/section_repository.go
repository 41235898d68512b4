package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/merchandising"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormSectionRepository implements SectionRepository using GORM
type GormSectionRepository struct {
	db *gorm.DB
}

// NewGormSectionRepository creates a new GormSectionRepository
func NewGormSectionRepository(db *gorm.DB) *GormSectionRepository {
	return &GormSectionRepository{db: db}
}

func (r *GormSectionRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a section by its ID
func (r *GormSectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*merchandising.Section, error) {
	var section merchandising.Section
	if err := r.conn(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindByIDForStore finds a section by ID within a store
func (r *GormSectionRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*merchandising.Section, error) {
	var section merchandising.Section
	if err := r.conn(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindAllForStore finds all sections for a store ordered by sort order
func (r *GormSectionRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]merchandising.Section, error) {
	var sections []merchandising.Section
	query := r.conn(ctx).Model(&merchandising.Section{}).Where("store_id = ?", storeID)

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("sort_order ASC, created_at ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// FindActiveForStore finds active sections for a store in ascending sort
// order. The ordering is load-bearing for storefront aggregation.
func (r *GormSectionRepository) FindActiveForStore(ctx context.Context, storeID uuid.UUID) ([]merchandising.Section, error) {
	var sections []merchandising.Section
	if err := r.conn(ctx).
		Where("store_id = ? AND active = ?", storeID, true).
		Order("sort_order ASC, created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Save creates or updates a section
func (r *GormSectionRepository) Save(ctx context.Context, section *merchandising.Section) error {
	return r.conn(ctx).Save(section).Error
}

// SaveBatch creates or updates multiple sections
func (r *GormSectionRepository) SaveBatch(ctx context.Context, sections []*merchandising.Section) error {
	if len(sections) == 0 {
		return nil
	}
	return r.conn(ctx).Save(sections).Error
}

// DeleteForStore deletes a section within a store
func (r *GormSectionRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&merchandising.Section{}, "store_id = ? AND id = ?", storeID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSectionRepository implements SectionRepository
var _ merchandising.SectionRepository = (*GormSectionRepository)(nil)
