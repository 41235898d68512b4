package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.conn(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByIDForStore finds a customer by ID within a store
func (r *GormCustomerRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.conn(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByEmail finds a customer by email within a store
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, storeID uuid.UUID, email string) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.conn(ctx).
		Where("store_id = ? AND email = ?", storeID, strings.ToLower(email)).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAllForStore finds customers for a store, newest first
func (r *GormCustomerRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*partner.Customer], error) {
	query := r.conn(ctx).Model(&partner.Customer{}).Where("store_id = ?", storeID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR name ILIKE ?", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*partner.Customer]{}, err
	}

	page := filter.Page
	pageSize := filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var customers []*partner.Customer
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error; err != nil {
		return shared.Paginated[*partner.Customer]{}, err
	}

	return shared.NewPaginated(customers, total, page, pageSize), nil
}

// ExistsByEmail checks if a customer with the given email exists in the store
func (r *GormCustomerRepository) ExistsByEmail(ctx context.Context, storeID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&partner.Customer{}).
		Where("store_id = ? AND email = ?", storeID, strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.conn(ctx).Save(customer).Error
}

// CountForStore counts customers for a store
func (r *GormCustomerRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&partner.Customer{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
