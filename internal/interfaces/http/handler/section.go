package handler

import (
	"github.com/gin-gonic/gin"

	merchapp "github.com/storefront/backend/internal/application/merchandising"
)

// SectionHandler handles dashboard home section management
type SectionHandler struct {
	BaseHandler
	sectionService *merchapp.SectionService
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(sectionService *merchapp.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// Create adds a home section
func (h *SectionHandler) Create(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req merchapp.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	section, err := h.sectionService.Create(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, section)
}

// List returns all sections for the store in sort order
func (h *SectionHandler) List(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	sections, err := h.sectionService.List(c.Request.Context(), sID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sections)
}

// Update edits a section
func (h *SectionHandler) Update(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	sectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	var req merchapp.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	section, err := h.sectionService.Update(c.Request.Context(), sID, sectionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, section)
}

// Reorder applies a new ordering across the store's sections
func (h *SectionHandler) Reorder(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req merchapp.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.sectionService.Reorder(c.Request.Context(), sID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes a section
func (h *SectionHandler) Delete(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	sectionID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid section ID")
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), sID, sectionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
