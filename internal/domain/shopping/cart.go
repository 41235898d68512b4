package shopping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line in a cart: a product snapshot and a quantity.
// The snapshot is taken at add time; checkout re-validates against the
// live product before creating an order.
type CartItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	StoreID   uuid.UUID       `json:"store_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns unit price times quantity
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds a shopper's pending items keyed by product ID.
// All mutation happens through this API; callers are expected to be a
// single logical thread (one HTTP request at a time per session), with
// last-writer-wins semantics when the backing store is shared.
type Cart struct {
	items map[uuid.UUID]*CartItem
	order []uuid.UUID
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{
		items: make(map[uuid.UUID]*CartItem),
	}
}

// AddItem adds a product snapshot to the cart. Adding a product that is
// already present increments its quantity instead of creating a second line.
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if existing, ok := c.items[item.ProductID]; ok {
		existing.Quantity += item.Quantity
		return
	}

	c.items[item.ProductID] = &item
	c.order = append(c.order, item.ProductID)
}

// SetQuantity replaces the quantity for a product already in the cart.
// Quantities below 1 are ignored; use RemoveItem to drop a line.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		return
	}
	if item, ok := c.items[productID]; ok {
		item.Quantity = quantity
	}
}

// RemoveItem removes a product from the cart
func (c *Cart) RemoveItem(productID uuid.UUID) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear removes every item
func (c *Cart) Clear() {
	c.items = make(map[uuid.UUID]*CartItem)
	c.order = nil
}

// ClearStore removes every item belonging to the given store,
// leaving lines from other stores untouched
func (c *Cart) ClearStore(storeID uuid.UUID) {
	kept := c.order[:0]
	for _, id := range c.order {
		if c.items[id].StoreID == storeID {
			delete(c.items, id)
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
}

// Item returns the line for a product, or nil if absent
func (c *Cart) Item(productID uuid.UUID) *CartItem {
	return c.items[productID]
}

// Items returns all lines in insertion order
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// ItemsForStore returns the lines belonging to one store, in insertion order
func (c *Cart) ItemsForStore(storeID uuid.UUID) []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		if c.items[id].StoreID == storeID {
			items = append(items, *c.items[id])
		}
	}
	return items
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.items)
}

// Subtotal sums unit price times quantity over the whole cart
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// SubtotalForStore sums unit price times quantity over one store's lines
func (c *Cart) SubtotalForStore(storeID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		if item.StoreID == storeID {
			total = total.Add(item.LineTotal())
		}
	}
	return total
}

// Snapshot returns a serializable copy of the cart's lines
func (c *Cart) Snapshot() []CartItem {
	return c.Items()
}

// RestoreCart rebuilds a cart from a previously serialized snapshot
func RestoreCart(items []CartItem) *Cart {
	cart := NewCart()
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		// A corrupt snapshot could repeat a product; keep the first line
		// so the order index never yields it twice.
		if _, exists := cart.items[item.ProductID]; exists {
			continue
		}
		cart.items[item.ProductID] = &CartItem{
			ProductID: item.ProductID,
			StoreID:   item.StoreID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
		cart.order = append(cart.order, item.ProductID)
	}
	return cart
}
