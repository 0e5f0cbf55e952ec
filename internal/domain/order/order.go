package order

import (
	"fmt"
	"time"

	"github.com/arganshop/backend/internal/domain/checkout"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SiblingWindow is the time window used to group order rows written by one
// checkout when no checkout id is available. Rows of one submission are
// assumed to land within the service's processing latency, well under this
// window.
const SiblingWindow = 5 * time.Minute

// Status represents the lifecycle state of an order row
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusCompleted
	case StatusCompleted, StatusCancelled:
		return false // terminal states
	}
	return false
}

// Record is one persisted order row. A checkout submission writes one Record
// per cart line; the customer fields, coupon value and grand total are
// duplicated on every row of the submission, and all rows share the same
// checkout id. There is no separate order-header entity.
type Record struct {
	shared.BaseEntity
	CheckoutID   uuid.UUID       `gorm:"type:uuid;index" json:"checkout_id"`
	Name         string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Email        string          `gorm:"type:varchar(200)" json:"email"`
	Phone        string          `gorm:"type:varchar(50);not null" json:"phone"`
	Address      string          `gorm:"type:text" json:"address"`
	CouponCode   string          `gorm:"type:varchar(50)" json:"coupon_code"`
	CouponValue  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"coupon_value"`
	Status       Status          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Total        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total"`
	ProductName  string          `gorm:"type:varchar(200);not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"product_price"`
	Quantity     int             `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "orders"
}

// NewRecord builds one order row for a single cart line of a checkout
// submission. The total is the precomputed grand total of the whole cart, not
// of this line.
func NewRecord(
	checkoutID uuid.UUID,
	customer checkout.CustomerInfo,
	productName string,
	productPrice decimal.Decimal,
	quantity int,
	total decimal.Decimal,
) (*Record, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Record{
		BaseEntity:   shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		CheckoutID:   checkoutID,
		Name:         customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Address:      customer.Address,
		CouponCode:   customer.CouponCode,
		CouponValue:  decimal.Zero,
		Status:       StatusPending,
		Total:        total,
		ProductName:  productName,
		ProductPrice: productPrice,
		Quantity:     quantity,
	}, nil
}

// UpdateStatus moves the record to the target status, enforcing the lifecycle
func (r *Record) UpdateStatus(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition order from %s to %s", r.Status, target))
	}

	r.Status = target
	r.UpdatedAt = time.Now()
	return nil
}

// SameCustomer reports whether the other row carries identical customer
// fields. Used by the legacy time-window grouping.
func (r *Record) SameCustomer(other *Record) bool {
	return r.Name == other.Name &&
		r.Email == other.Email &&
		r.Phone == other.Phone &&
		r.Address == other.Address
}
