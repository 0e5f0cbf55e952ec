package catalog

import (
	"context"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	// FindByID finds a product by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns all products ordered by id ascending
	FindAll(ctx context.Context) ([]Product, error)

	// FindByNamePattern returns the first product whose English name matches the
	// given pattern (case-insensitive substring). Returns shared.ErrNotFound when
	// nothing matches.
	FindByNamePattern(ctx context.Context, pattern string) (*Product, error)

	// Save persists a product (insert or update)
	Save(ctx context.Context, product *Product) error

	// Delete removes a product by ID
	Delete(ctx context.Context, id int64) error
}
