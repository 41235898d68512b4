package storefront

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/merchandising"
	"github.com/storefront/backend/internal/domain/shared"
)

// BrowseService serves the public storefront reads: store resolution by
// slug, category and product listings, product pages and banners.
type BrowseService struct {
	storeRepo    identity.StoreRepository
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	bannerRepo   merchandising.BannerRepository
	logger       *zap.Logger
}

// NewBrowseService creates a new BrowseService
func NewBrowseService(
	storeRepo identity.StoreRepository,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	bannerRepo merchandising.BannerRepository,
	logger *zap.Logger,
) *BrowseService {
	return &BrowseService{
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		bannerRepo:   bannerRepo,
		logger:       logger,
	}
}

// StoreBySlug resolves a storefront by its slug. Suspended and closed
// stores are reported as not found so the storefront goes dark without
// leaking why.
func (s *BrowseService) StoreBySlug(ctx context.Context, slug string) (*StoreView, error) {
	store, err := s.storeRepo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, err
	}
	if !store.IsActive() {
		return nil, shared.ErrNotFound
	}
	view := NewStoreView(store)
	return &view, nil
}

// ResolveStoreID maps a storefront slug to its store ID. Used by the
// HTTP layer to scope storefront routes.
func (s *BrowseService) ResolveStoreID(ctx context.Context, slug string) (uuid.UUID, error) {
	store, err := s.StoreBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, err
	}
	return store.ID, nil
}

// Categories returns the store's categories in sort order.
func (s *BrowseService) Categories(ctx context.Context, storeID uuid.UUID) ([]CategoryView, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "sort_order"
	filter.OrderDir = "asc"
	categories, err := s.categoryRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, NewCategoryView(&c))
	}
	return views, nil
}

// Banners returns the store's active promotional banners in sort order.
func (s *BrowseService) Banners(ctx context.Context, storeID uuid.UUID) ([]BannerView, error) {
	banners, err := s.bannerRepo.FindActiveForStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	views := make([]BannerView, 0, len(banners))
	for _, b := range banners {
		views = append(views, NewBannerView(&b))
	}
	return views, nil
}

// ProductsByCategory lists a category's active products.
func (s *BrowseService) ProductsByCategory(ctx context.Context, storeID, categoryID uuid.UUID, filter shared.Filter) ([]ProductView, error) {
	products, err := s.productRepo.FindByCategory(ctx, storeID, categoryID, filter)
	if err != nil {
		return nil, err
	}
	return s.activeViews(products), nil
}

// SearchProducts lists active products matching the search term.
func (s *BrowseService) SearchProducts(ctx context.Context, storeID uuid.UUID, term string, filter shared.Filter) ([]ProductView, error) {
	filter.Search = strings.TrimSpace(term)
	products, err := s.productRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}
	return s.activeViews(products), nil
}

// ProductBySlug returns a product page view and records the visit. A
// failure to persist the view count is logged but does not fail the read.
func (s *BrowseService) ProductBySlug(ctx context.Context, storeID uuid.UUID, slug string) (*ProductDetailView, error) {
	product, err := s.productRepo.FindBySlug(ctx, storeID, slug)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.ErrNotFound
	}

	product.RecordView()
	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Warn("failed to record product view",
			zap.String("product_id", product.ID.String()),
			zap.Error(err))
	}

	view := NewProductDetailView(product)
	return &view, nil
}

func (s *BrowseService) activeViews(products []catalog.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		if !p.IsActive() {
			continue
		}
		views = append(views, NewProductView(&p))
	}
	return views
}
