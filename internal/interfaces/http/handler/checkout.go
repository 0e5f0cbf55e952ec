package handler

import (
	"errors"
	"net/http"

	checkoutapp "github.com/arganshop/backend/internal/application/checkout"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/arganshop/backend/internal/interfaces/http/dto"
	"github.com/arganshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutHandler handles the checkout submission endpoint
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// SubmitResponse reports a completed checkout, with a message in the
// caller's language
type SubmitResponse struct {
	Message    string          `json:"message"`
	CheckoutID uuid.UUID       `json:"checkout_id"`
	OrderIDs   []int64         `json:"order_ids"`
	Total      decimal.Decimal `json:"total"`
}

// messageKeys maps checkout domain error codes to translated messages
var messageKeys = map[string]string{
	"VALIDATION_FAILED": "checkout.validation_failed",
	"EMPTY_CART":        "checkout.empty_cart",
	"CHECKOUT_FAILED":   "checkout.failed",
	"PRODUCT_NOT_FOUND": "cart.product_not_found",
}

// Submit turns the session's cart into order rows
func (h *CheckoutHandler) Submit(c *gin.Context) {
	locale := middleware.GetLocale(c)

	var req checkoutapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := middleware.FormatValidationErrors(err, middleware.GetRequestID(c))
		resp.Error.Message = locale.Message("checkout.validation_failed")
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	result, err := h.checkoutService.Submit(c.Request.Context(), middleware.GetCartSession(c), req)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			message := domainErr.Message
			if key, ok := messageKeys[domainErr.Code]; ok {
				message = locale.Message(key)
			}
			h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, message)
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Created(c, SubmitResponse{
		Message:    locale.Message("checkout.success"),
		CheckoutID: result.CheckoutID,
		OrderIDs:   result.OrderIDs,
		Total:      result.Total,
	})
}
