package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/storefront/backend/internal/application/trade"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// OrderHandler handles dashboard order management
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns the store's orders, optionally filtered by status
func (h *OrderHandler) List(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		dto.ListRequest
		Status string `form:"status" binding:"omitempty,oneof=PENDING PAID SHIPPED DELIVERED CANCELLED"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.orderService.List(c.Request.Context(), sID, req.Status, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), sID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus transitions an order through its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), sID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
