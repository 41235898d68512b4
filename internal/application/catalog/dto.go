package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=255"`
	Slug          string           `json:"slug" binding:"required,min=1,max=255"`
	Description   string           `json:"description" binding:"max=5000"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Stock         *int             `json:"stock"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Images        []string         `json:"images"`
	Featured      *bool            `json:"featured"`
	SortOrder     *int             `json:"sort_order"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description   *string          `json:"description" binding:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	ClearDiscount bool             `json:"clear_discount"`
	Stock         *int             `json:"stock"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Images        []string         `json:"images"`
	Featured      *bool            `json:"featured"`
	SortOrder     *int             `json:"sort_order"`
}

// ProductResponse represents a product in dashboard API responses
type ProductResponse struct {
	ID            uuid.UUID        `json:"id"`
	StoreID       uuid.UUID        `json:"store_id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Stock         int              `json:"stock"`
	LowStock      bool             `json:"low_stock"`
	Images        []string         `json:"images"`
	Status        string           `json:"status"`
	Featured      bool             `json:"featured"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	SalesCount    int              `json:"sales_count"`
	ViewCount     int              `json:"view_count"`
	SortOrder     int              `json:"sort_order"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewProductResponse maps a product to its dashboard response
func NewProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		LowStock:      p.IsLowStock(LowStockThreshold),
		Images:        p.ImageURLs(),
		Status:        string(p.Status),
		Featured:      p.Featured,
		CategoryID:    p.CategoryID,
		SalesCount:    p.SalesCount,
		ViewCount:     p.ViewCount,
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	Slug      string `json:"slug" binding:"required,min=1,max=255"`
	ImageURL  string `json:"image_url" binding:"max=1024"`
	SortOrder *int   `json:"sort_order"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=255"`
	ImageURL  *string `json:"image_url" binding:"omitempty,max=1024"`
	SortOrder *int    `json:"sort_order"`
}

// CategoryResponse represents a category in dashboard API responses
type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"store_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ImageURL     string    `json:"image_url,omitempty"`
	SortOrder    int       `json:"sort_order"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCategoryResponse maps a category to its dashboard response
func NewCategoryResponse(c *catalog.Category, productCount int64) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID,
		StoreID:      c.StoreID,
		Name:         c.Name,
		Slug:         c.Slug,
		ImageURL:     c.ImageURL,
		SortOrder:    c.SortOrder,
		ProductCount: productCount,
		CreatedAt:    c.CreatedAt,
	}
}
