package storefront

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/merchandising"
)

// sectionFetchLimit caps how many candidate products each section pulls.
const sectionFetchLimit = 50

// SectionProductService resolves which products appear on each merchandising
// section of a store's home page. A product may appear in at most one
// exclusive section; sections are processed in sort order, so the
// first section to select a product keeps it. The all_products type is
// exempt from this exclusivity and always shows its full candidate list.
type SectionProductService struct {
	sectionRepo merchandising.SectionRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewSectionProductService creates a new SectionProductService
func NewSectionProductService(
	sectionRepo merchandising.SectionRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *SectionProductService {
	return &SectionProductService{
		sectionRepo: sectionRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// HomeSections returns the store's active sections in display order, each
// with its resolved products. Sections that end up with no products are
// omitted. Fetch failures for a single section degrade to an empty section
// rather than failing the whole home page, so this never returns an error.
func (s *SectionProductService) HomeSections(ctx context.Context, storeID uuid.UUID) []SectionView {
	if storeID == uuid.Nil {
		return []SectionView{}
	}

	sections, err := s.sectionRepo.FindActiveForStore(ctx, storeID)
	if err != nil {
		s.logger.Error("failed to load sections for store",
			zap.String("store_id", storeID.String()),
			zap.Error(err))
		return []SectionView{}
	}

	views := make([]SectionView, 0, len(sections))
	claimed := make(map[uuid.UUID]struct{})

	for _, section := range sections {
		candidates, err := s.fetchCandidates(ctx, storeID, section.Type)
		if err != nil {
			s.logger.Warn("section product fetch failed, rendering section empty",
				zap.String("store_id", storeID.String()),
				zap.String("section_id", section.ID.String()),
				zap.String("section_type", section.Type.String()),
				zap.Error(err))
			continue
		}

		products := make([]ProductView, 0, len(candidates))
		if section.Type == merchandising.SectionTypeAllProducts {
			// all_products shows everything and never claims.
			for _, p := range candidates {
				products = append(products, NewProductView(&p))
			}
		} else {
			for _, p := range candidates {
				if _, taken := claimed[p.ID]; taken {
					continue
				}
				claimed[p.ID] = struct{}{}
				products = append(products, NewProductView(&p))
			}
		}

		if len(products) == 0 {
			continue
		}
		views = append(views, SectionView{
			ID:           section.ID,
			Name:         section.Name,
			Type:         section.Type.String(),
			DisplayStyle: string(section.DisplayStyle),
			Products:     products,
		})
	}

	return views
}

// SectionProducts returns the resolved products keyed by section display
// name, with the names repeated in display order. Resolution semantics
// are identical to HomeSections. When two sections share a display name
// the earlier one in sort order keeps it.
func (s *SectionProductService) SectionProducts(ctx context.Context, storeID uuid.UUID) SectionProductsView {
	result := SectionProductsView{
		Order:    []string{},
		Sections: make(map[string][]ProductView),
	}
	for _, view := range s.HomeSections(ctx, storeID) {
		if _, taken := result.Sections[view.Name]; taken {
			continue
		}
		result.Sections[view.Name] = view.Products
		result.Order = append(result.Order, view.Name)
	}
	return result
}

func (s *SectionProductService) fetchCandidates(ctx context.Context, storeID uuid.UUID, sectionType merchandising.SectionType) ([]catalog.Product, error) {
	switch sectionType {
	case merchandising.SectionTypeBestSelling:
		return s.productRepo.FindBestSelling(ctx, storeID, sectionFetchLimit)
	case merchandising.SectionTypeNewArrivals, merchandising.SectionTypeAllProducts:
		return s.productRepo.FindNewest(ctx, storeID, sectionFetchLimit)
	case merchandising.SectionTypeFeatured:
		return s.productRepo.FindFeatured(ctx, storeID, sectionFetchLimit)
	case merchandising.SectionTypeOnSale:
		return s.productRepo.FindOnSale(ctx, storeID, sectionFetchLimit)
	case merchandising.SectionTypeTrending:
		return s.productRepo.FindTrending(ctx, storeID, sectionFetchLimit)
	default:
		// category and custom sections have no dedicated ranking yet.
		return s.productRepo.FindActive(ctx, storeID, sectionFetchLimit)
	}
}
