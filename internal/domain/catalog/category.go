package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Category groups products inside one store
type Category struct {
	shared.StoreAggregateRoot
	Name      string `gorm:"type:varchar(100);not null"`
	Slug      string `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_store_slug,priority:2"`
	ImageURL  string `gorm:"type:varchar(500)"`
	SortOrder int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(storeID uuid.UUID, name, slug string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Category{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Slug:               strings.ToLower(slug),
	}, nil
}

// Update updates the category's name
func (c *Category) Update(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetImageURL sets the category image
func (c *Category) SetImageURL(url string) {
	c.ImageURL = url
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetSortOrder sets the display order
func (c *Category) SetSortOrder(order int) {
	c.SortOrder = order
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// validateCategoryName validates the category name
func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
