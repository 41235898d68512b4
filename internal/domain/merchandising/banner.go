package merchandising

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Banner is a promotional image shown on the storefront home page
type Banner struct {
	shared.StoreAggregateRoot
	Title     string `gorm:"type:varchar(200)"`
	ImageURL  string `gorm:"type:varchar(500);not null"`
	LinkURL   string `gorm:"type:varchar(500)"`
	SortOrder int    `gorm:"not null;default:0;index"`
	Active    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Banner) TableName() string {
	return "banners"
}

// NewBanner creates a new banner
func NewBanner(storeID uuid.UUID, title, imageURL string) (*Banner, error) {
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Banner image URL cannot be empty")
	}

	return &Banner{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Title:              title,
		ImageURL:           imageURL,
		Active:             true,
	}, nil
}

// Update updates the banner content
func (b *Banner) Update(title, imageURL, linkURL string) error {
	if imageURL == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Banner image URL cannot be empty")
	}

	b.Title = title
	b.ImageURL = imageURL
	b.LinkURL = linkURL
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetSortOrder changes the banner's position
func (b *Banner) SetSortOrder(order int) {
	b.SortOrder = order
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// SetActive toggles storefront visibility
func (b *Banner) SetActive(active bool) {
	b.Active = active
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}
