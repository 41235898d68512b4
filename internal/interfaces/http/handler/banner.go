package handler

import (
	"github.com/gin-gonic/gin"

	merchapp "github.com/storefront/backend/internal/application/merchandising"
)

// BannerHandler handles dashboard banner management
type BannerHandler struct {
	BaseHandler
	bannerService *merchapp.BannerService
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerService *merchapp.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// Create adds a banner
func (h *BannerHandler) Create(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req merchapp.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, banner)
}

// List returns all banners for the store
func (h *BannerHandler) List(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	banners, err := h.bannerService.List(c.Request.Context(), sID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banners)
}

// Update edits a banner
func (h *BannerHandler) Update(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	bannerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	var req merchapp.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	banner, err := h.bannerService.Update(c.Request.Context(), sID, bannerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, banner)
}

// Delete removes a banner
func (h *BannerHandler) Delete(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	bannerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), sID, bannerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
