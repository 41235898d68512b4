package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
)

// IsValid checks if the method is a known PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCashOnDelivery, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// PaymentStatus represents the state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment records a payment attempt against an order. One order may have
// several attempts but at most one confirmed payment.
type Payment struct {
	shared.StoreAggregateRoot
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method      PaymentMethod   `gorm:"size:16;not null"`
	Status      PaymentStatus   `gorm:"size:16;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reference   string          `gorm:"size:128;index"` // external gateway reference
	FailureNote string          `gorm:"size:512"`
	ConfirmedAt *time.Time
	RefundedAt  *time.Time
}

// TableName specifies the database table name
func (Payment) TableName() string {
	return "payments"
}

// NewPayment starts a pending payment for an order.
func NewPayment(storeID, orderID uuid.UUID, method PaymentMethod, amount decimal.Decimal) (*Payment, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", fmt.Sprintf("Unknown payment method %q", method))
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	return &Payment{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		OrderID:            orderID,
		Method:             method,
		Status:             PaymentStatusPending,
		Amount:             amount,
	}, nil
}

// Confirm marks a pending payment as confirmed and records the gateway
// reference, if any.
func (p *Payment) Confirm(reference string) error {
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("PAYMENT_NOT_PENDING",
			fmt.Sprintf("Cannot confirm a %s payment", p.Status))
	}
	now := time.Now()
	p.Status = PaymentStatusConfirmed
	p.Reference = reference
	p.ConfirmedAt = &now
	p.UpdatedAt = now
	return nil
}

// Fail marks a pending payment as failed.
func (p *Payment) Fail(note string) error {
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("PAYMENT_NOT_PENDING",
			fmt.Sprintf("Cannot fail a %s payment", p.Status))
	}
	p.Status = PaymentStatusFailed
	p.FailureNote = note
	p.UpdatedAt = time.Now()
	return nil
}

// Refund marks a confirmed payment as refunded.
func (p *Payment) Refund() error {
	if p.Status != PaymentStatusConfirmed {
		return shared.NewDomainError("PAYMENT_NOT_CONFIRMED",
			fmt.Sprintf("Cannot refund a %s payment", p.Status))
	}
	now := time.Now()
	p.Status = PaymentStatusRefunded
	p.RefundedAt = &now
	p.UpdatedAt = now
	return nil
}

// IsConfirmed reports whether the payment succeeded.
func (p *Payment) IsConfirmed() bool {
	return p.Status == PaymentStatusConfirmed
}
