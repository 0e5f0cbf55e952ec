package handler

import (
	"strconv"

	orderapp "github.com/arganshop/backend/internal/application/order"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles the admin order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns all order rows, newest first
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get returns a single order row
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Details expands an order row into the full checkout it belongs to
func (h *OrderHandler) Details(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	details, err := h.orderService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, details)
}

// UpdateStatus moves an order row through its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete removes an order row
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *OrderHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.BadRequest(c, "Invalid order id")
		return 0, false
	}
	return id, true
}
