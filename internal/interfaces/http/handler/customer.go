package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/storefront/backend/internal/application/partner"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles storefront customer accounts and the
// dashboard customer list
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Register creates a customer account on the storefront
func (h *CustomerHandler) Register(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)

	var req partnerapp.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.customerService.Register(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates a customer on the storefront
func (h *CustomerHandler) Login(c *gin.Context) {
	sID := middleware.GetStorefrontStoreID(c)

	var req partnerapp.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.customerService.Login(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh exchanges a customer refresh token for a fresh pair
func (h *CustomerHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.customerService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Logout revokes the presented customer token
func (h *CustomerHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.customerService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Me returns the authenticated customer's profile
func (h *CustomerHandler) Me(c *gin.Context) {
	sID, cID, ok := h.customerScope(c)
	if !ok {
		return
	}

	customer, err := h.customerService.Me(c.Request.Context(), sID, cID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// UpdateProfile edits the authenticated customer's profile
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	sID, cID, ok := h.customerScope(c)
	if !ok {
		return
	}

	var req partnerapp.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.UpdateProfile(c.Request.Context(), sID, cID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// ChangePassword changes the authenticated customer's password
func (h *CustomerHandler) ChangePassword(c *gin.Context) {
	sID, cID, ok := h.customerScope(c)
	if !ok {
		return
	}

	var req partnerapp.ChangePasswordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.customerService.ChangePassword(c.Request.Context(), sID, cID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// List returns the store's customers for the dashboard
func (h *CustomerHandler) List(c *gin.Context) {
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

	page, err := h.customerService.List(c.Request.Context(), sID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one customer for the dashboard
func (h *CustomerHandler) Get(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.Get(c.Request.Context(), sID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// SetStatus enables or disables a customer account from the dashboard
func (h *CustomerHandler) SetStatus(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.SetStatus(c.Request.Context(), sID, customerID, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// customerScope resolves the storefront store and the authenticated
// customer, rejecting tokens issued for a different store.
func (h *CustomerHandler) customerScope(c *gin.Context) (storeID, customerID uuid.UUID, ok bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	sID := middleware.GetStorefrontStoreID(c)
	tokenStore, err := claims.GetStoreUUID()
	if err != nil || tokenStore != sID {
		h.Forbidden(c, "Token is not valid for this store")
		return
	}
	cID, err := claims.GetSubjectUUID()
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	return sID, cID, true
}
