package checkout

import (
	"github.com/arganshop/backend/internal/domain/checkout"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity"`
}

// UpdateQuantityRequest represents a request to change a cart line's quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse is one cart line in API responses
type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	NameEN    string          `json:"nameEN"`
	Price     decimal.Decimal `json:"price"`
	Photo     string          `json:"photo"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// CartResponse represents the cart in API responses
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"item_count"`
}

// CheckoutRequest carries the customer form for a checkout submission
type CheckoutRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Email      string `json:"email" binding:"omitempty,email,max=200"`
	Phone      string `json:"phone" binding:"required,phone,max=50"`
	Address    string `json:"address" binding:"max=2000"`
	CouponCode string `json:"coupon_code" binding:"max=50"`
}

// CheckoutResponse reports a successful checkout submission
type CheckoutResponse struct {
	CheckoutID uuid.UUID       `json:"checkout_id"`
	OrderIDs   []int64         `json:"order_ids"`
	Total      decimal.Decimal `json:"total"`
}

// ToCartResponse converts a domain cart to its API representation
func ToCartResponse(cart *checkout.Cart) CartResponse {
	items := make([]CartItemResponse, len(cart.Lines))
	for i, line := range cart.Lines {
		items[i] = CartItemResponse{
			ProductID: line.ProductID,
			NameEN:    line.NameEN,
			Price:     line.Price,
			Photo:     line.Photo,
			Quantity:  line.Quantity,
			Amount:    line.Amount(),
		}
	}
	return CartResponse{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}
