package checkout

import (
	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CartLine is one (product, quantity) pair held in a cart prior to checkout.
// The product snapshot (name, price, photo) is refreshed against authoritative
// catalog records during reconciliation; the quantity is user-chosen.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	NameEN    string          `json:"nameEN"`
	Price     decimal.Decimal `json:"price"`
	Photo     string          `json:"photo"`
	Quantity  int             `json:"quantity"`
}

// Amount returns price * quantity for this line
func (l CartLine) Amount() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the lines of one shopping session. Invariants: at most one line
// per product id, every quantity >= 1. Line order follows first insertion.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add inserts a new line with the given quantity, or increments the existing
// line for the same product. Quantities below 1 count as 1. There is no upper
// bound.
func (c *Cart) Add(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ProductID: productID, Quantity: quantity})
}

// Remove deletes the line for the given product id. Absent ids are a no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of an existing line, clamping values below 1
// to 1. Absent ids are a no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Quantity returns the quantity for the given product id, or 0 when absent
func (c *Cart) Quantity(productID int64) int {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart holds no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear drops all lines
func (c *Cart) Clear() {
	c.Lines = nil
}

// ProductIDs returns the unique product ids referenced by the cart in line order
func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.Lines))
	for _, l := range c.Lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

// IDSet returns the identity set of product ids referenced by the cart.
// Reconciliation is keyed on this set, not on line order or quantities.
func (c *Cart) IDSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(c.Lines))
	for _, l := range c.Lines {
		set[l.ProductID] = struct{}{}
	}
	return set
}

// SameIDSet reports whether the cart references exactly the given id set
func (c *Cart) SameIDSet(other map[int64]struct{}) bool {
	set := c.IDSet()
	if len(set) != len(other) {
		return false
	}
	for id := range set {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// ApplySnapshot rebuilds the line for the given product from an authoritative
// catalog record, preserving the previously chosen quantity (default 1).
func (c *Cart) ApplySnapshot(product *catalog.Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			quantity := c.Lines[i].Quantity
			if quantity < 1 {
				quantity = 1
			}
			c.Lines[i] = CartLine{
				ProductID: product.ID,
				NameEN:    product.NameEN,
				Price:     product.Price,
				Photo:     product.Photo,
				Quantity:  quantity,
			}
			return
		}
	}
}

// Total returns the grand total over all lines (price * quantity)
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Amount())
	}
	return total
}

// ItemCount returns the summed quantity over all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}
