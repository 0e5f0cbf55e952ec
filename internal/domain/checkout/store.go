package checkout

import (
	"context"
	"time"
)

// Store persists session-scoped carts keyed by an opaque session token.
// A missing token is not an error: Get returns an empty cart, so a fresh
// session and an expired one behave the same.
type Store interface {
	// Get returns the cart for the given session token, or an empty cart
	// when the token is unknown or expired.
	Get(ctx context.Context, token string) (*Cart, error)

	// Put stores the cart under the given session token, refreshing its TTL.
	Put(ctx context.Context, token string, cart *Cart, ttl time.Duration) error

	// Delete removes the cart for the given session token. Deleting an
	// unknown token is a no-op.
	Delete(ctx context.Context, token string) error

	// Close releases any resources held by the store
	Close() error
}
