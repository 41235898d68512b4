package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/storefront/backend/internal/application/finance"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// PaymentHandler handles dashboard payment management
type PaymentHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create starts a payment attempt for an order
func (h *PaymentHandler) Create(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreatePaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), sID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, payment)
}

// Confirm marks a payment as confirmed and the order as paid
func (h *PaymentHandler) Confirm(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	paymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req financeapp.ConfirmPaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Confirm(c.Request.Context(), sID, paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// Fail marks a payment attempt as failed
func (h *PaymentHandler) Fail(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	paymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req financeapp.FailPaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Fail(c.Request.Context(), sID, paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// Refund reverses a confirmed payment and cancels its order
func (h *PaymentHandler) Refund(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	paymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"max=512"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.paymentService.Refund(c.Request.Context(), sID, paymentID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// Get returns one payment
func (h *PaymentHandler) Get(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	paymentID, ok := parseUUIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), sID, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payment)
}

// List returns the store's payments
func (h *PaymentHandler) List(c *gin.Context) {
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

	page, err := h.paymentService.List(c.Request.Context(), sID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListForOrder returns all payment attempts for an order
func (h *PaymentHandler) ListForOrder(c *gin.Context) {
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

	payments, err := h.paymentService.ListForOrder(c.Request.Context(), sID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}
