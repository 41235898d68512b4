package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// OrderStatus represents the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusPaid || target == OrderStatusCancelled
	case OrderStatusPaid:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// OrderItem is a line item on an order. Prices are captured at order time
// so later catalog edits do not change historical orders.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"size:255;not null"`
	ImageURL  string          `gorm:"size:1024"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrderItem creates an order line item with the line total precomputed.
func NewOrderItem(orderID, productID uuid.UUID, name, imageURL string, unitPrice decimal.Decimal, quantity int) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Name:      name,
		ImageURL:  imageURL,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ShippingAddress is embedded into the order row.
type ShippingAddress struct {
	Recipient string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:64"`
	Line1     string `gorm:"size:512;not null"`
	Line2     string `gorm:"size:512"`
	City      string `gorm:"size:128;not null"`
	Region    string `gorm:"size:128"`
	PostCode  string `gorm:"size:32"`
	Country   string `gorm:"size:64;not null"`
}

// Validate checks the required address fields.
func (a ShippingAddress) Validate() error {
	if strings.TrimSpace(a.Recipient) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Recipient cannot be empty")
	}
	if strings.TrimSpace(a.Line1) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}
	if strings.TrimSpace(a.City) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if strings.TrimSpace(a.Country) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Country cannot be empty")
	}
	return nil
}

// Order is a customer order placed against a single store. Orders never mix
// products from different stores; checkout splits the cart per store.
type Order struct {
	shared.StoreAggregateRoot
	OrderNumber  string          `gorm:"size:32;not null;uniqueIndex"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       OrderStatus     `gorm:"size:16;not null;index"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingFee  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note         string          `gorm:"size:1024"`
	Address      ShippingAddress `gorm:"embedded;embeddedPrefix:ship_"`
	PaidAt       *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	CancelReason string `gorm:"size:512"`
}

// TableName specifies the database table name
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order for a store with the given line items.
// Totals are derived from the items plus the shipping fee.
func NewOrder(storeID, customerID uuid.UUID, orderNumber string, address ShippingAddress, shippingFee decimal.Decimal, note string) (*Order, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if shippingFee.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SHIPPING_FEE", "Shipping fee cannot be negative")
	}

	return &Order{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		OrderNumber:        orderNumber,
		CustomerID:         customerID,
		Status:             OrderStatusPending,
		Subtotal:           decimal.Zero,
		ShippingFee:        shippingFee,
		Total:              shippingFee,
		Note:               note,
		Address:            address,
	}, nil
}

// AddItem appends a line item and recalculates totals. Items can only be
// added while the order is still pending.
func (o *Order) AddItem(productID uuid.UUID, name, imageURL string, unitPrice decimal.Decimal, quantity int) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("ORDER_NOT_PENDING", fmt.Sprintf("Cannot add items to a %s order", o.Status))
	}
	item, err := NewOrderItem(o.ID, productID, name, imageURL, unitPrice, quantity)
	if err != nil {
		return err
	}
	o.Items = append(o.Items, *item)
	o.recalculate()
	return nil
}

func (o *Order) recalculate() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	o.Subtotal = subtotal
	o.Total = subtotal.Add(o.ShippingFee)
	o.UpdatedAt = time.Now()
}

// ItemCount returns the total quantity across all line items.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// MarkPaid transitions the order to PAID.
func (o *Order) MarkPaid() error {
	if err := o.transition(OrderStatusPaid); err != nil {
		return err
	}
	now := time.Now()
	o.PaidAt = &now
	return nil
}

// MarkShipped transitions the order to SHIPPED.
func (o *Order) MarkShipped() error {
	if err := o.transition(OrderStatusShipped); err != nil {
		return err
	}
	now := time.Now()
	o.ShippedAt = &now
	return nil
}

// MarkDelivered transitions the order to DELIVERED.
func (o *Order) MarkDelivered() error {
	if err := o.transition(OrderStatusDelivered); err != nil {
		return err
	}
	now := time.Now()
	o.DeliveredAt = &now
	return nil
}

// Cancel transitions the order to CANCELLED and records the reason.
// Only pending and paid orders can be cancelled.
func (o *Order) Cancel(reason string) error {
	if err := o.transition(OrderStatusCancelled); err != nil {
		return err
	}
	now := time.Now()
	o.CancelledAt = &now
	o.CancelReason = reason
	return nil
}

// IsCancelled reports whether the order was cancelled.
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

func (o *Order) transition(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}
