package merchandising

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/merchandising"
	"github.com/storefront/backend/internal/domain/shared"
)

// BannerService handles dashboard management of promotional banners
type BannerService struct {
	bannerRepo merchandising.BannerRepository
}

// NewBannerService creates a new BannerService
func NewBannerService(bannerRepo merchandising.BannerRepository) *BannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

// Create creates a new banner
func (s *BannerService) Create(ctx context.Context, storeID uuid.UUID, req CreateBannerRequest) (*BannerResponse, error) {
	banner, err := merchandising.NewBanner(storeID, req.Title, req.ImageURL)
	if err != nil {
		return nil, err
	}
	if req.LinkURL != "" {
		if err := banner.Update(banner.Title, banner.ImageURL, req.LinkURL); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		banner.SetSortOrder(*req.SortOrder)
	}
	if req.Active != nil {
		banner.SetActive(*req.Active)
	}

	if err := s.bannerRepo.Save(ctx, banner); err != nil {
		return nil, err
	}
	return NewBannerResponse(banner), nil
}

// Update updates an existing banner
func (s *BannerService) Update(ctx context.Context, storeID, bannerID uuid.UUID, req UpdateBannerRequest) (*BannerResponse, error) {
	banner, err := s.bannerRepo.FindByIDForStore(ctx, storeID, bannerID)
	if err != nil {
		return nil, err
	}

	title := banner.Title
	imageURL := banner.ImageURL
	linkURL := banner.LinkURL
	if req.Title != nil {
		title = *req.Title
	}
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		linkURL = *req.LinkURL
	}
	if err := banner.Update(title, imageURL, linkURL); err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		banner.SetSortOrder(*req.SortOrder)
	}
	if req.Active != nil {
		banner.SetActive(*req.Active)
	}

	if err := s.bannerRepo.Save(ctx, banner); err != nil {
		return nil, err
	}
	return NewBannerResponse(banner), nil
}

// List returns all banners for the store in sort order
func (s *BannerService) List(ctx context.Context, storeID uuid.UUID) ([]*BannerResponse, error) {
	banners, err := s.bannerRepo.FindAllForStore(ctx, storeID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]*BannerResponse, 0, len(banners))
	for _, banner := range banners {
		responses = append(responses, NewBannerResponse(&banner))
	}
	return responses, nil
}

// Delete removes a banner
func (s *BannerService) Delete(ctx context.Context, storeID, bannerID uuid.UUID) error {
	if _, err := s.bannerRepo.FindByIDForStore(ctx, storeID, bannerID); err != nil {
		return err
	}
	return s.bannerRepo.DeleteForStore(ctx, storeID, bannerID)
}
