package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// CategoryHandler handles dashboard category management
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create adds a category
func (h *CategoryHandler) Create(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// List returns all categories for the store
func (h *CategoryHandler) List(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), sID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// Update edits a category
func (h *CategoryHandler) Update(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), sID, categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Delete removes an empty category
func (h *CategoryHandler) Delete(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), sID, categoryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
