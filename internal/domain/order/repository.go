package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for order rows
type Repository interface {
	// Create persists a new order row, assigning id and createdAt
	Create(ctx context.Context, record *Record) error

	// FindByID finds an order row by its ID, returning shared.ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*Record, error)

	// FindAll returns all order rows ordered by created_at descending
	FindAll(ctx context.Context) ([]Record, error)

	// FindByCheckoutID returns all rows written by one checkout submission
	FindByCheckoutID(ctx context.Context, checkoutID uuid.UUID) ([]Record, error)

	// FindSiblings returns the rows with customer fields identical to the
	// anchor's and createdAt within ±SiblingWindow of the anchor's, the anchor
	// included. Legacy grouping for rows without a checkout id.
	FindSiblings(ctx context.Context, anchor *Record) ([]Record, error)

	// Save persists changes to an existing row
	Save(ctx context.Context, record *Record) error

	// Delete removes an order row by ID
	Delete(ctx context.Context, id int64) error
}
