package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds an order by its ID, including line items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.conn(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDForStore finds an order by ID within a store
func (r *GormOrderRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.conn(ctx).
		Preload("Items").
		Where("store_id = ? AND id = ?", storeID, id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber finds an order by its order number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	var order trade.Order
	if err := r.conn(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllForStore finds orders for a store, newest first
func (r *GormOrderRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	query := r.conn(ctx).Model(&trade.Order{}).Where("store_id = ?", storeID)
	return r.paginate(ctx, query, filter)
}

// FindByCustomer finds orders placed by a customer, newest first
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	query := r.conn(ctx).Model(&trade.Order{}).Where("customer_id = ?", customerID)
	return r.paginate(ctx, query, filter)
}

// FindByStatusForStore finds orders in a given status for a store
func (r *GormOrderRepository) FindByStatusForStore(ctx context.Context, storeID uuid.UUID, status trade.OrderStatus, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	query := r.conn(ctx).Model(&trade.Order{}).Where("store_id = ? AND status = ?", storeID, status)
	return r.paginate(ctx, query, filter)
}

func (r *GormOrderRepository) paginate(ctx context.Context, query *gorm.DB, filter shared.Filter) (shared.Paginated[*trade.Order], error) {
	if filter.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*trade.Order]{}, err
	}

	page := filter.Page
	pageSize := filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	orderBy := "created_at DESC"
	if filter.OrderBy != "" {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		orderBy = filter.OrderBy + " " + dir
	}

	var orders []*trade.Order
	if err := query.
		Preload("Items").
		Order(orderBy).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error; err != nil {
		return shared.Paginated[*trade.Order]{}, err
	}

	return shared.NewPaginated(orders, total, page, pageSize), nil
}

// Save creates or updates an order together with its line items
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.conn(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

// CountForStore counts orders for a store
func (r *GormOrderRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&trade.Order{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatusForStore counts orders in a given status for a store
func (r *GormOrderRepository) CountByStatusForStore(ctx context.Context, storeID uuid.UUID, status trade.OrderStatus) (int64, error) {
	var count int64
	if err := r.conn(ctx).
		Model(&trade.Order{}).
		Where("store_id = ? AND status = ?", storeID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)
