package checkout

import (
	"strings"

	"github.com/arganshop/backend/internal/domain/shared"
)

// CustomerInfo holds the checkout form fields supplied by the customer.
// Name and Phone are required; the rest are optional.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	CouponCode string `json:"coupon_code"`
}

// Validate checks the required fields. It is run before any persistence call;
// a failure refuses the whole submission.
func (c CustomerInfo) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" {
		return shared.NewDomainError("VALIDATION_FAILED", "Name and phone are required")
	}
	return nil
}
