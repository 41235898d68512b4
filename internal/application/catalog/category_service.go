package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryService handles dashboard category management for a store
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, productRepo catalog.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, storeID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsBySlug(ctx, storeID, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	}

	category, err := catalog.NewCategory(storeID, req.Name, req.Slug)
	if err != nil {
		return nil, err
	}
	if req.ImageURL != "" {
		category.SetImageURL(req.ImageURL)
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return NewCategoryResponse(category, 0), nil
}

// Update updates an existing category
func (s *CategoryService) Update(ctx context.Context, storeID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForStore(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := category.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		category.SetImageURL(*req.ImageURL)
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	count, err := s.productRepo.CountByCategory(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	return NewCategoryResponse(category, count), nil
}

// List returns the store's categories in sort order with product counts
func (s *CategoryService) List(ctx context.Context, storeID uuid.UUID) ([]*CategoryResponse, error) {
	filter := shared.DefaultFilter()
	filter.OrderBy = "sort_order"
	filter.OrderDir = "asc"
	categories, err := s.categoryRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		count, err := s.productRepo.CountByCategory(ctx, storeID, c.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, NewCategoryResponse(&c, count))
	}
	return responses, nil
}

// Delete removes a category. Products keep existing but lose the
// category assignment; refusing to delete non-empty categories is the
// merchant's call through the dashboard, not a hard rule here.
func (s *CategoryService) Delete(ctx context.Context, storeID, categoryID uuid.UUID) error {
	if _, err := s.categoryRepo.FindByIDForStore(ctx, storeID, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.DeleteForStore(ctx, storeID, categoryID)
}
