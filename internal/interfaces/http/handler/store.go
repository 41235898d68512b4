package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/domain/identity"
)

// StoreHandler handles store registration and dashboard store management
type StoreHandler struct {
	BaseHandler
	storeService *identityapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *identityapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Register creates a new store with its owner account
func (h *StoreHandler) Register(c *gin.Context) {
	var req identityapp.RegisterStoreInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.storeService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns the authenticated merchant's store
func (h *StoreHandler) Get(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	store, err := h.storeService.Get(c.Request.Context(), sID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// Update edits the store profile. Owner only.
func (h *StoreHandler) Update(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if !requireOwner(c) {
		h.Forbidden(c, "Only the store owner can do this")
		return
	}

	var req identityapp.UpdateStoreInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.Update(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// CreateUser adds a staff account to the store. Owner only.
func (h *StoreHandler) CreateUser(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if !requireOwner(c) {
		h.Forbidden(c, "Only the store owner can manage users")
		return
	}

	var req identityapp.CreateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.storeService.CreateUser(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// ListUsers returns the store's merchant accounts
func (h *StoreHandler) ListUsers(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	filter := req.ToFilter()

	page, err := h.storeService.ListUsers(c.Request.Context(), sID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// RemoveUser deletes a staff account. Owner only.
func (h *StoreHandler) RemoveUser(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	if !requireOwner(c) {
		h.Forbidden(c, "Only the store owner can manage users")
		return
	}

	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.storeService.RemoveUser(c.Request.Context(), sID, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// requireOwner reports whether the authenticated merchant is the owner
func requireOwner(c *gin.Context) bool {
	claims := middleware.GetClaims(c)
	return claims != nil && claims.Role == string(identity.UserRoleOwner)
}
