package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.conn(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByIDForStore finds a payment by ID within a store
func (r *GormPaymentRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.conn(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByOrder finds all payments recorded against an order
func (r *GormPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*finance.Payment, error) {
	var payments []*finance.Payment
	if err := r.conn(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindConfirmedByOrder finds the confirmed payment for an order, if any
func (r *GormPaymentRepository) FindConfirmedByOrder(ctx context.Context, orderID uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.conn(ctx).
		Where("order_id = ? AND status = ?", orderID, finance.PaymentStatusConfirmed).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindAllForStore finds payments for a store, newest first
func (r *GormPaymentRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*finance.Payment], error) {
	query := r.conn(ctx).Model(&finance.Payment{}).Where("store_id = ?", storeID)

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if method, ok := filter.Filters["method"]; ok {
		query = query.Where("method = ?", method)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[*finance.Payment]{}, err
	}

	page := filter.Page
	pageSize := filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var payments []*finance.Payment
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&payments).Error; err != nil {
		return shared.Paginated[*finance.Payment]{}, err
	}

	return shared.NewPaginated(payments, total, page, pageSize), nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	return r.conn(ctx).Save(payment).Error
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
