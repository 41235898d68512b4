package catalog

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents one item a store sells.
// It is the aggregate root for catalog operations; section membership is
// never stored on the product, it is computed at read time by the
// storefront aggregation service.
type Product struct {
	shared.StoreAggregateRoot
	Name          string           `gorm:"type:varchar(200);not null"`
	Slug          string           `gorm:"type:varchar(200);not null;uniqueIndex:idx_product_store_slug,priority:2"`
	Description   string           `gorm:"type:text"`
	Price         decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Stock         int              `gorm:"not null;default:0"`
	Images        string           `gorm:"type:jsonb"` // JSON array of image URLs
	Status        ProductStatus    `gorm:"type:varchar(20);not null;default:'active'"`
	Featured      bool             `gorm:"not null;default:false"`
	SalesCount    int              `gorm:"not null;default:0;index"`
	ViewCount     int              `gorm:"not null;default:0"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index"`
	SortOrder     int              `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(storeID uuid.UUID, name, slug string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Slug:               strings.ToLower(slug),
		Price:              price,
		Status:             ProductStatusActive,
		Images:             "[]",
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrice updates the selling price. A discount price that would no longer
// undercut the new price is cleared rather than left inverted.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Price = price
	if p.DiscountPrice != nil && p.DiscountPrice.GreaterThanOrEqual(price) {
		p.DiscountPrice = nil
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetDiscountPrice sets the discounted price; nil removes the discount
func (p *Product) SetDiscountPrice(price *decimal.Decimal) error {
	if price != nil {
		if price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Discount price cannot be negative")
		}
		if price.GreaterThanOrEqual(p.Price) {
			return shared.NewDomainError("INVALID_PRICE", "Discount price must be lower than the regular price")
		}
	}

	p.DiscountPrice = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// EffectivePrice returns the price a customer pays right now
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// IsOnSale returns true if the product has an active discount
func (p *Product) IsOnSale() bool {
	return p.DiscountPrice != nil
}

// SetStock replaces the stock quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	p.Stock = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RecordSale registers a completed sale of the given quantity,
// decrementing stock and incrementing the sales counter
func (p *Product) RecordSale(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Sale quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.ErrInsufficientStock
	}

	p.Stock -= quantity
	p.SalesCount += quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RestoreStock returns quantity to stock after a cancelled order
func (p *Product) RestoreStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Restore quantity must be positive")
	}

	p.Stock += quantity
	if p.SalesCount >= quantity {
		p.SalesCount -= quantity
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RecordView increments the view counter
func (p *Product) RecordView() {
	p.ViewCount++
}

// SetCategory sets the product category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetFeatured toggles the featured flag
func (p *Product) SetFeatured(featured bool) {
	p.Featured = featured
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetSortOrder sets the display order of the product
func (p *Product) SetSortOrder(order int) {
	p.SortOrder = order
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetImageURLs replaces the product image list
func (p *Product) SetImageURLs(urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return shared.NewDomainError("INVALID_IMAGES", "Image list cannot be encoded")
	}

	p.Images = string(raw)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ImageURLs returns the decoded product image list
func (p *Product) ImageURLs() []string {
	if p.Images == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(p.Images), &urls); err != nil {
		return []string{}
	}
	return urls
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product is visible on the storefront
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsLowStock returns true if stock is at or below the given threshold
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validateSlug validates a URL slug
func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 200 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 200 characters")
	}
	for _, r := range slug {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return shared.NewDomainError("INVALID_SLUG", "Slug can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
