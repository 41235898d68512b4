package storefront

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/merchandising"
)

// ProductView is the storefront-facing projection of a product. It only
// carries what a shelf or listing needs to render.
type ProductView struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Price          decimal.Decimal  `json:"price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	OnSale         bool             `json:"on_sale"`
	ImageURL       string           `json:"image_url,omitempty"`
	Stock          int              `json:"stock"`
	Featured       bool             `json:"featured"`
	CategoryID     *uuid.UUID       `json:"category_id,omitempty"`
}

// NewProductView maps a catalog product to its storefront projection.
func NewProductView(p *catalog.Product) ProductView {
	view := ProductView{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		EffectivePrice: p.EffectivePrice(),
		OnSale:         p.IsOnSale(),
		Stock:          p.Stock,
		Featured:       p.Featured,
		CategoryID:     p.CategoryID,
	}
	if urls := p.ImageURLs(); len(urls) > 0 {
		view.ImageURL = urls[0]
	}
	return view
}

// ProductDetailView extends ProductView with the fields the product page needs.
type ProductDetailView struct {
	ProductView
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// NewProductDetailView maps a catalog product to its product-page projection.
func NewProductDetailView(p *catalog.Product) ProductDetailView {
	return ProductDetailView{
		ProductView: NewProductView(p),
		Description: p.Description,
		Images:      p.ImageURLs(),
	}
}

// SectionView is one rendered merchandising shelf: the section metadata
// plus the products resolved for it.
type SectionView struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	DisplayStyle string        `json:"display_style"`
	Products     []ProductView `json:"products"`
}

// SectionProductsView is the home page shelf mapping: products keyed by
// section display name, with the names repeated in display order so
// clients can render shelves without sorting.
type SectionProductsView struct {
	Order    []string                 `json:"order"`
	Sections map[string][]ProductView `json:"sections"`
}

// StoreView is the public projection of a store.
type StoreView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	CurrencyCode string    `json:"currency_code"`
}

// NewStoreView maps a store to its public projection.
func NewStoreView(s *identity.Store) StoreView {
	return StoreView{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		LogoURL:      s.LogoURL,
		CurrencyCode: s.CurrencyCode,
	}
}

// CategoryView is the public projection of a category.
type CategoryView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	ImageURL string    `json:"image_url,omitempty"`
}

// NewCategoryView maps a category to its public projection.
func NewCategoryView(c *catalog.Category) CategoryView {
	return CategoryView{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
	}
}

// BannerView is the public projection of a promotional banner.
type BannerView struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
	LinkURL  string    `json:"link_url,omitempty"`
}

// NewBannerView maps a banner to its public projection.
func NewBannerView(b *merchandising.Banner) BannerView {
	return BannerView{
		ID:       b.ID,
		Title:    b.Title,
		ImageURL: b.ImageURL,
		LinkURL:  b.LinkURL,
	}
}
