package handler

import (
	"github.com/gin-gonic/gin"

	shoppingapp "github.com/storefront/backend/internal/application/shopping"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CartHandler handles the session cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *shoppingapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *shoppingapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the current session cart
func (h *CartHandler) Get(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)
	cart, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem adds a product to the cart, merging quantity when the
// product is already present
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)

	var req shoppingapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.StoreID = middleware.GetStorefrontStoreID(c)

	cart, err := h.cartService.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// SetQuantity sets a line's quantity
func (h *CartHandler) SetQuantity(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem removes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID := middleware.GetCartSessionID(c)
	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
