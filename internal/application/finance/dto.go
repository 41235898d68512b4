package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/finance"
)

// CreatePaymentInput starts a payment attempt for an order
type CreatePaymentInput struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Method  string    `json:"method" binding:"required,oneof=card cod bank_transfer"`
}

// ConfirmPaymentInput carries the gateway reference for a confirmation
type ConfirmPaymentInput struct {
	Reference string `json:"reference"`
}

// FailPaymentInput carries the failure reason from the gateway
type FailPaymentInput struct {
	Note string `json:"note"`
}

// PaymentView is the API representation of a payment attempt
type PaymentView struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"store_id"`
	OrderID     uuid.UUID       `json:"order_id"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference,omitempty"`
	FailureNote string          `json:"failure_note,omitempty"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	RefundedAt  *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewPaymentView maps a domain payment to its API representation
func NewPaymentView(p *finance.Payment) PaymentView {
	return PaymentView{
		ID:          p.ID,
		StoreID:     p.StoreID,
		OrderID:     p.OrderID,
		Method:      string(p.Method),
		Status:      string(p.Status),
		Amount:      p.Amount,
		Reference:   p.Reference,
		FailureNote: p.FailureNote,
		ConfirmedAt: p.ConfirmedAt,
		RefundedAt:  p.RefundedAt,
		CreatedAt:   p.CreatedAt,
	}
}
