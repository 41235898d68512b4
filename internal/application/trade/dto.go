package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/trade"
)

// ShippingAddressRequest carries the delivery address at checkout
type ShippingAddressRequest struct {
	Recipient string `json:"recipient" binding:"required,min=1,max=255"`
	Phone     string `json:"phone" binding:"max=64"`
	Line1     string `json:"line1" binding:"required,min=1,max=512"`
	Line2     string `json:"line2" binding:"max=512"`
	City      string `json:"city" binding:"required,min=1,max=128"`
	Region    string `json:"region" binding:"max=128"`
	PostCode  string `json:"post_code" binding:"max=32"`
	Country   string `json:"country" binding:"required,min=2,max=64"`
}

func (r ShippingAddressRequest) toDomain() trade.ShippingAddress {
	return trade.ShippingAddress{
		Recipient: r.Recipient,
		Phone:     r.Phone,
		Line1:     r.Line1,
		Line2:     r.Line2,
		City:      r.City,
		Region:    r.Region,
		PostCode:  r.PostCode,
		Country:   r.Country,
	}
}

// CheckoutRequest represents a checkout of the session cart against one store
type CheckoutRequest struct {
	StoreID uuid.UUID              `json:"store_id" binding:"required"`
	Address ShippingAddressRequest `json:"address" binding:"required"`
	Note    string                 `json:"note" binding:"max=1024"`
}

// UpdateOrderStatusRequest represents a dashboard status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"max=512"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	StoreID      uuid.UUID           `json:"store_id"`
	OrderNumber  string              `json:"order_number"`
	CustomerID   uuid.UUID           `json:"customer_id"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	ShippingFee  decimal.Decimal     `json:"shipping_fee"`
	Total        decimal.Decimal     `json:"total"`
	Note         string              `json:"note,omitempty"`
	CancelReason string              `json:"cancel_reason,omitempty"`
	PaidAt       *time.Time          `json:"paid_at,omitempty"`
	ShippedAt    *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt  *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// NewOrderResponse maps an order to its API response
func NewOrderResponse(o *trade.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return &OrderResponse{
		ID:           o.ID,
		StoreID:      o.StoreID,
		OrderNumber:  o.OrderNumber,
		CustomerID:   o.CustomerID,
		Status:       o.Status.String(),
		Items:        items,
		Subtotal:     o.Subtotal,
		ShippingFee:  o.ShippingFee,
		Total:        o.Total,
		Note:         o.Note,
		CancelReason: o.CancelReason,
		PaidAt:       o.PaidAt,
		ShippedAt:    o.ShippedAt,
		DeliveredAt:  o.DeliveredAt,
		CreatedAt:    o.CreatedAt,
	}
}
