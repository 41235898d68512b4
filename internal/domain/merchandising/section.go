package merchandising

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// SectionType is the rule that selects which products a section shows
type SectionType string

const (
	SectionTypeBestSelling SectionType = "best_selling"
	SectionTypeNewArrivals SectionType = "new_arrivals"
	SectionTypeFeatured    SectionType = "featured"
	SectionTypeOnSale      SectionType = "on_sale"
	SectionTypeAllProducts SectionType = "all_products"
	SectionTypeTrending    SectionType = "trending"
	SectionTypeCategory    SectionType = "category"
	SectionTypeCustom      SectionType = "custom"
)

// ValidSectionTypes lists every recognized section type
var ValidSectionTypes = []SectionType{
	SectionTypeBestSelling,
	SectionTypeNewArrivals,
	SectionTypeFeatured,
	SectionTypeOnSale,
	SectionTypeAllProducts,
	SectionTypeTrending,
	SectionTypeCategory,
	SectionTypeCustom,
}

// String returns the string representation of SectionType
func (t SectionType) String() string {
	return string(t)
}

// IsValid reports whether the section type is one of the recognized values
func (t SectionType) IsValid() bool {
	for _, valid := range ValidSectionTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// DisplayStyle controls how a section renders its products
type DisplayStyle string

const (
	DisplayStyleGrid DisplayStyle = "grid"
	DisplayStyleList DisplayStyle = "list"
)

// Section is one merchandising shelf on a storefront home page.
// Sections are configured by the merchant and read-only from the storefront;
// which products a section shows is computed per request, never stored.
type Section struct {
	shared.StoreAggregateRoot
	Name         string       `gorm:"type:varchar(100);not null"`
	Type         SectionType  `gorm:"type:varchar(30);not null"`
	SortOrder    int          `gorm:"not null;default:0;index"`
	Active       bool         `gorm:"not null;default:true"`
	DisplayStyle DisplayStyle `gorm:"type:varchar(10);not null;default:'grid'"`
}

// TableName returns the table name for GORM
func (Section) TableName() string {
	return "sections"
}

// NewSection creates a new merchandising section
func NewSection(storeID uuid.UUID, name string, sectionType SectionType, sortOrder int) (*Section, error) {
	if err := validateSectionName(name); err != nil {
		return nil, err
	}
	if !sectionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SECTION_TYPE", "Unknown section type")
	}

	return &Section{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Type:               sectionType,
		SortOrder:          sortOrder,
		Active:             true,
		DisplayStyle:       DisplayStyleGrid,
	}, nil
}

// Update updates the section's name and type
func (s *Section) Update(name string, sectionType SectionType) error {
	if err := validateSectionName(name); err != nil {
		return err
	}
	if !sectionType.IsValid() {
		return shared.NewDomainError("INVALID_SECTION_TYPE", "Unknown section type")
	}

	s.Name = name
	s.Type = sectionType
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetSortOrder changes the section's position on the home page
func (s *Section) SetSortOrder(order int) {
	s.SortOrder = order
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetDisplayStyle sets the render style
func (s *Section) SetDisplayStyle(style DisplayStyle) error {
	if style != DisplayStyleGrid && style != DisplayStyleList {
		return shared.NewDomainError("INVALID_DISPLAY_STYLE", "Display style must be grid or list")
	}

	s.DisplayStyle = style
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetActive toggles storefront visibility
func (s *Section) SetActive(active bool) {
	s.Active = active
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// validateSectionName validates the section display name
func validateSectionName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Section name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Section name cannot exceed 100 characters")
	}
	return nil
}
