package finance

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/finance"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/trade"
)

// PaymentService records payment attempts against orders and keeps the
// order status in step with their outcome.
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	orderRepo   trade.OrderRepository
	tx          shared.TransactionManager
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	orderRepo trade.OrderRepository,
	tx shared.TransactionManager,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Create starts a pending payment for an unpaid order. The amount is
// taken from the order total, never from the caller.
func (s *PaymentService) Create(ctx context.Context, storeID uuid.UUID, input CreatePaymentInput) (*PaymentView, error) {
	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != trade.OrderStatusPending {
		return nil, shared.NewDomainError("ORDER_NOT_PAYABLE", "Order is not awaiting payment")
	}

	if confirmed, err := s.paymentRepo.FindConfirmedByOrder(ctx, order.ID); err == nil && confirmed != nil {
		return nil, shared.NewDomainError("ORDER_ALREADY_PAID", "Order already has a confirmed payment")
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	payment, err := finance.NewPayment(storeID, order.ID, finance.PaymentMethod(input.Method), order.Total)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("payment created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("method", string(payment.Method)))

	view := NewPaymentView(payment)
	return &view, nil
}

// Confirm marks a pending payment as confirmed and the order as paid.
// Both writes happen in one transaction.
func (s *PaymentService) Confirm(ctx context.Context, storeID, paymentID uuid.UUID, input ConfirmPaymentInput) (*PaymentView, error) {
	payment, err := s.paymentRepo.FindByIDForStore(ctx, storeID, paymentID)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, payment.OrderID)
	if err != nil {
		return nil, err
	}

	if err := payment.Confirm(input.Reference); err != nil {
		return nil, err
	}
	if err := order.MarkPaid(); err != nil {
		return nil, err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment confirmed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", order.ID.String()))

	view := NewPaymentView(payment)
	return &view, nil
}

// Fail marks a pending payment as failed. The order stays pending so
// the customer can retry with another method.
func (s *PaymentService) Fail(ctx context.Context, storeID, paymentID uuid.UUID, input FailPaymentInput) (*PaymentView, error) {
	payment, err := s.paymentRepo.FindByIDForStore(ctx, storeID, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.Fail(input.Note); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Warn("payment failed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("note", input.Note))

	view := NewPaymentView(payment)
	return &view, nil
}

// Refund reverses a confirmed payment and cancels the order.
func (s *PaymentService) Refund(ctx context.Context, storeID, paymentID uuid.UUID, reason string) (*PaymentView, error) {
	payment, err := s.paymentRepo.FindByIDForStore(ctx, storeID, paymentID)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, payment.OrderID)
	if err != nil {
		return nil, err
	}

	if err := payment.Refund(); err != nil {
		return nil, err
	}
	if err := order.Cancel(reason); err != nil {
		return nil, err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			return err
		}
		return s.orderRepo.Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment refunded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("order_id", order.ID.String()))

	view := NewPaymentView(payment)
	return &view, nil
}

// Get returns one payment for the dashboard
func (s *PaymentService) Get(ctx context.Context, storeID, paymentID uuid.UUID) (*PaymentView, error) {
	payment, err := s.paymentRepo.FindByIDForStore(ctx, storeID, paymentID)
	if err != nil {
		return nil, err
	}
	view := NewPaymentView(payment)
	return &view, nil
}

// ListForOrder returns all payment attempts for an order
func (s *PaymentService) ListForOrder(ctx context.Context, storeID, orderID uuid.UUID) ([]PaymentView, error) {
	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, NewPaymentView(p))
	}
	return views, nil
}

// List returns the store's payments for the dashboard
func (s *PaymentService) List(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[PaymentView], error) {
	page, err := s.paymentRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return shared.Paginated[PaymentView]{}, err
	}
	views := make([]PaymentView, 0, len(page.Items))
	for _, p := range page.Items {
		views = append(views, NewPaymentView(p))
	}
	return shared.NewPaginated(views, page.Total, page.Page, page.PageSize), nil
}
