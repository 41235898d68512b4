package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/storefront/backend/internal/application/trade"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout and the customer's own orders
type CheckoutHandler struct {
	BaseHandler
	checkoutService *tradeapp.CheckoutService
	orderService    *tradeapp.OrderService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *tradeapp.CheckoutService, orderService *tradeapp.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// Checkout turns the session cart into an order for the authenticated
// customer, deducting stock and clearing the cart
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	customerID, err := subjectID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	sessionID := middleware.GetCartSessionID(c)

	var req tradeapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.StoreID = middleware.GetStorefrontStoreID(c)

	order, err := h.checkoutService.Checkout(c.Request.Context(), sessionID, customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// MyOrders lists the authenticated customer's orders
func (h *CheckoutHandler) MyOrders(c *gin.Context) {
	customerID, err := subjectID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.orderService.ListForCustomer(c.Request.Context(), customerID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// MyOrder returns one of the authenticated customer's orders
func (h *CheckoutHandler) MyOrder(c *gin.Context) {
	customerID, err := subjectID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetForCustomer(c.Request.Context(), customerID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
