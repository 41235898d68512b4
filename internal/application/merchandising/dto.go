package merchandising

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/merchandising"
)

// CreateSectionRequest represents a request to create a merchandising section
type CreateSectionRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Type         string `json:"type" binding:"required"`
	SortOrder    *int   `json:"sort_order"`
	DisplayStyle string `json:"display_style" binding:"omitempty,oneof=grid list"`
	Active       *bool  `json:"active"`
}

// UpdateSectionRequest represents a request to update a section
type UpdateSectionRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	SortOrder    *int    `json:"sort_order"`
	DisplayStyle *string `json:"display_style" binding:"omitempty,oneof=grid list"`
	Active       *bool   `json:"active"`
}

// ReorderSectionsRequest carries the full ordered list of section IDs
type ReorderSectionsRequest struct {
	SectionIDs []uuid.UUID `json:"section_ids" binding:"required,min=1"`
}

// SectionResponse represents a section in dashboard API responses
type SectionResponse struct {
	ID           uuid.UUID `json:"id"`
	StoreID      uuid.UUID `json:"store_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	SortOrder    int       `json:"sort_order"`
	Active       bool      `json:"active"`
	DisplayStyle string    `json:"display_style"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSectionResponse maps a section to its dashboard response
func NewSectionResponse(s *merchandising.Section) *SectionResponse {
	return &SectionResponse{
		ID:           s.ID,
		StoreID:      s.StoreID,
		Name:         s.Name,
		Type:         s.Type.String(),
		SortOrder:    s.SortOrder,
		Active:       s.Active,
		DisplayStyle: string(s.DisplayStyle),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// CreateBannerRequest represents a request to create a banner
type CreateBannerRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	ImageURL  string `json:"image_url" binding:"required,max=1024"`
	LinkURL   string `json:"link_url" binding:"max=1024"`
	SortOrder *int   `json:"sort_order"`
	Active    *bool  `json:"active"`
}

// UpdateBannerRequest represents a request to update a banner
type UpdateBannerRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	ImageURL  *string `json:"image_url" binding:"omitempty,max=1024"`
	LinkURL   *string `json:"link_url" binding:"omitempty,max=1024"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}

// BannerResponse represents a banner in dashboard API responses
type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBannerResponse maps a banner to its dashboard response
func NewBannerResponse(b *merchandising.Banner) *BannerResponse {
	return &BannerResponse{
		ID:        b.ID,
		StoreID:   b.StoreID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		SortOrder: b.SortOrder,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
	}
}
