package order

import (
	"time"

	"github.com/arganshop/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateStatusRequest represents a request to move an order to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse is one order row in API responses
type OrderResponse struct {
	ID           int64           `json:"id"`
	CheckoutID   uuid.UUID       `json:"checkout_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	CouponCode   string          `json:"coupon_code"`
	CouponValue  decimal.Decimal `json:"coupon_value"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OrderItemDetail is one line of a grouped checkout in the details view.
// The photo is recovered from the current catalog by product name; rows whose
// product no longer matches fall back to the placeholder image.
type OrderItemDetail struct {
	OrderID      int64           `json:"order_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Photo        string          `json:"photo"`
	Amount       decimal.Decimal `json:"amount"`
}

// OrderDetailsResponse is the full view of one checkout submission, anchored
// at a single order row and expanded to all rows written by the same checkout
type OrderDetailsResponse struct {
	AnchorID   int64             `json:"anchor_id"`
	CheckoutID uuid.UUID         `json:"checkout_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	CouponCode string            `json:"coupon_code"`
	Status     string            `json:"status"`
	Total      decimal.Decimal   `json:"total"`
	Items      []OrderItemDetail `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ToOrderResponse converts an order record to its API representation
func ToOrderResponse(record *order.Record) OrderResponse {
	return OrderResponse{
		ID:           record.ID,
		CheckoutID:   record.CheckoutID,
		Name:         record.Name,
		Email:        record.Email,
		Phone:        record.Phone,
		Address:      record.Address,
		CouponCode:   record.CouponCode,
		CouponValue:  record.CouponValue,
		Status:       record.Status.String(),
		Total:        record.Total,
		ProductName:  record.ProductName,
		ProductPrice: record.ProductPrice,
		Quantity:     record.Quantity,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of order records
func ToOrderResponses(records []order.Record) []OrderResponse {
	responses := make([]OrderResponse, len(records))
	for i := range records {
		responses[i] = ToOrderResponse(&records[i])
	}
	return responses
}
