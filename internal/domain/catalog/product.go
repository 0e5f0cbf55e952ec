package catalog

import (
	"strings"
	"time"

	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PlaceholderPhoto is used when a product photo cannot be resolved
const PlaceholderPhoto = "default.jpg"

// Product represents an item sold by the storefront.
// Products are read-only from the storefront surface; only the admin API
// mutates them.
type Product struct {
	shared.BaseEntity
	NameEN string          `gorm:"column:name_en;type:varchar(200);not null" json:"nameEN"`
	Price  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"price"`
	Photo  string          `gorm:"type:varchar(255)" json:"photo"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(nameEN string, price decimal.Decimal, photo string) (*Product, error) {
	if strings.TrimSpace(nameEN) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	now := time.Now()
	return &Product{
		BaseEntity: shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		NameEN:     nameEN,
		Price:      price,
		Photo:      photo,
	}, nil
}

// Rename changes the product name
func (p *Product) Rename(nameEN string) error {
	if strings.TrimSpace(nameEN) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	p.NameEN = nameEN
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrice changes the product price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// SetPhoto updates the product photo object key
func (p *Product) SetPhoto(photo string) {
	p.Photo = photo
	p.UpdatedAt = time.Now()
}

// PhotoOrPlaceholder returns the stored photo key, or the placeholder when unset
func (p *Product) PhotoOrPlaceholder() string {
	if p.Photo == "" {
		return PlaceholderPhoto
	}
	return p.Photo
}
