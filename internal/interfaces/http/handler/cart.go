package handler

import (
	"strconv"

	checkoutapp "github.com/arganshop/backend/internal/application/checkout"
	"github.com/arganshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart API endpoints. Every operation is scoped to the
// caller's cart session token resolved by the CartSession middleware.
type CartHandler struct {
	BaseHandler
	cartService *checkoutapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *checkoutapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the session's cart
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), middleware.GetCartSession(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// AddItem adds a product to the session's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req checkoutapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	cart, err := h.cartService.AddItem(c.Request.Context(), middleware.GetCartSession(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateQuantity changes a cart line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := h.pathProductID(c)
	if !ok {
		return
	}
	var req checkoutapp.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), middleware.GetCartSession(c), productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// RemoveItem removes a product from the session's cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := h.pathProductID(c)
	if !ok {
		return
	}
	cart, err := h.cartService.RemoveItem(c.Request.Context(), middleware.GetCartSession(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Clear drops the session's cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context(), middleware.GetCartSession(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CartHandler) pathProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil || id < 1 {
		h.BadRequest(c, "Invalid product id")
		return 0, false
	}
	return id, true
}
