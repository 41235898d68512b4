package handler

import (
	"github.com/gin-gonic/gin"

	storefrontapp "github.com/storefront/backend/internal/application/storefront"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// StorefrontHandler serves the public shop-side endpoints: store info,
// the section-driven home page, category browsing, search and product
// pages. All routes are scoped by the store slug resolved in middleware.
type StorefrontHandler struct {
	BaseHandler
	browseService  *storefrontapp.BrowseService
	sectionService *storefrontapp.SectionProductService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(
	browseService *storefrontapp.BrowseService,
	sectionService *storefrontapp.SectionProductService,
) *StorefrontHandler {
	return &StorefrontHandler{
		browseService:  browseService,
		sectionService: sectionService,
	}
}

// Store returns the storefront's public profile
func (h *StorefrontHandler) Store(c *gin.Context) {
	store, err := h.browseService.StoreBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, store)
}

// Home returns the home page sections with their resolved products.
// Sections that end up empty are omitted.
func (h *StorefrontHandler) Home(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)
	sections := h.sectionService.HomeSections(c.Request.Context(), sID)
	h.Success(c, sections)
}

// SectionProducts returns the resolved products keyed by section display
// name, plus the names in display order
func (h *StorefrontHandler) SectionProducts(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)
	products := h.sectionService.SectionProducts(c.Request.Context(), sID)
	h.Success(c, products)
}

// Categories returns the store's categories
func (h *StorefrontHandler) Categories(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)
	categories, err := h.browseService.Categories(c.Request.Context(), sID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Banners returns the store's active banners
func (h *StorefrontHandler) Banners(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)
	banners, err := h.browseService.Banners(c.Request.Context(), sID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, banners)
}

// CategoryProducts lists active products in a category
func (h *StorefrontHandler) CategoryProducts(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.browseService.ProductsByCategory(c.Request.Context(), sID, categoryID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Search finds active products matching a search term
func (h *StorefrontHandler) Search(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.browseService.SearchProducts(c.Request.Context(), sID, req.Search, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Product returns a product page by its slug
func (h *StorefrontHandler) Product(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)

	product, err := h.browseService.ProductBySlug(c.Request.Context(), sID, c.Param("productSlug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}
