package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// LowStockThreshold is the stock level at or below which the dashboard
// flags a product for restocking.
const LowStockThreshold = 5

// ProductService handles dashboard product management for a store
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product in the store's catalog
func (s *ProductService) Create(ctx context.Context, storeID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySlug(ctx, storeID, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByIDForStore(ctx, storeID, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(storeID, req.Name, req.Slug, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.DiscountPrice != nil {
		if err := product.SetDiscountPrice(req.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if len(req.Images) > 0 {
		if err := product.SetImageURLs(req.Images); err != nil {
			return nil, err
		}
	}
	product.SetCategory(req.CategoryID)
	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}
	if req.SortOrder != nil {
		product.SetSortOrder(*req.SortOrder)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, storeID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.ClearDiscount {
		if err := product.SetDiscountPrice(nil); err != nil {
			return nil, err
		}
	} else if req.DiscountPrice != nil {
		if err := product.SetDiscountPrice(req.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.Images != nil {
		if err := product.SetImageURLs(req.Images); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByIDForStore(ctx, storeID, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}
	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}
	if req.SortOrder != nil {
		product.SetSortOrder(*req.SortOrder)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// Get returns a single product for the dashboard
func (s *ProductService) Get(ctx context.Context, storeID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// List returns the store's products with pagination
func (s *ProductService) List(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[*ProductResponse], error) {
	products, err := s.productRepo.FindAllForStore(ctx, storeID, filter)
	if err != nil {
		return shared.Paginated[*ProductResponse]{}, err
	}
	total, err := s.productRepo.CountForStore(ctx, storeID, filter)
	if err != nil {
		return shared.Paginated[*ProductResponse]{}, err
	}

	responses := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(&p))
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// LowStock lists active products at or below the restock threshold
func (s *ProductService) LowStock(ctx context.Context, storeID uuid.UUID) ([]*ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx, storeID, LowStockThreshold)
	if err != nil {
		return nil, err
	}
	responses := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, NewProductResponse(&p))
	}
	return responses, nil
}

// SetStatus activates or deactivates a product
func (s *ProductService) SetStatus(ctx context.Context, storeID, productID uuid.UUID, active bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if active {
		err = product.Activate()
	} else {
		err = product.Deactivate()
	}
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return NewProductResponse(product), nil
}

// Delete removes a product from the store's catalog
func (s *ProductService) Delete(ctx context.Context, storeID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByIDForStore(ctx, storeID, productID); err != nil {
		return err
	}
	return s.productRepo.DeleteForStore(ctx, storeID, productID)
}
