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

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	if err := r.conn(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDForStore finds a user by ID within a store
func (r *GormUserRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	if err := r.conn(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email within a store
func (r *GormUserRepository) FindByEmail(ctx context.Context, storeID uuid.UUID, email string) (*identity.User, error) {
	var user identity.User
	if err := r.conn(ctx).
		Where("store_id = ? AND email = ?", storeID, strings.ToLower(email)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAllForStore finds users for a store
func (r *GormUserRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*identity.User], error) {
	query := r.conn(ctx).Model(&identity.User{}).Where("store_id = ?", storeID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*identity.User]{}, err
	}

	page := filter.Page
	pageSize := filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var users []*identity.User
	if err := query.
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		return shared.Paginated[*identity.User]{}, err
	}

	return shared.NewPaginated(users, total, page, pageSize), nil
}

// ExistsByEmail checks if a user with the given email exists in the store
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, storeID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&identity.User{}).
		Where("store_id = ? AND email = ?", storeID, strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.conn(ctx).Save(user).Error
}

// DeleteForStore deletes a user within a store
func (r *GormUserRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&identity.User{}, "store_id = ? AND id = ?", storeID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
