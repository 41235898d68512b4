package shopping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shopping"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	StoreID   uuid.UUID `json:"store_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
}

// CartItemView represents a cart line item in API responses
type CartItemView struct {
	ProductID uuid.UUID       `json:"product_id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView represents the whole cart in API responses
type CartView struct {
	Items     []CartItemView  `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewCartView maps a cart to its API projection.
func NewCartView(cart *shopping.Cart) CartView {
	items := cart.Items()
	views := make([]CartItemView, 0, len(items))
	count := 0
	for _, item := range items {
		views = append(views, CartItemView{
			ProductID: item.ProductID,
			StoreID:   item.StoreID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
		count += item.Quantity
	}
	return CartView{
		Items:     views,
		ItemCount: count,
		Subtotal:  cart.Subtotal(),
	}
}
