package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/arganshop/backend/internal/domain/checkout"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/arganshop/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultCartTTL is how long an untouched cart session survives in the store
const DefaultCartTTL = 72 * time.Hour

// CartService manages per-session shopping carts. Every mutation persists the
// cart back to the session store under the caller's session token.
type CartService struct {
	store       checkout.Store
	productRepo catalog.ProductRepository
	ttl         time.Duration
}

// NewCartService creates a new cart service
func NewCartService(store checkout.Store, productRepo catalog.ProductRepository, ttl time.Duration) *CartService {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartService{
		store:       store,
		productRepo: productRepo,
		ttl:         ttl,
	}
}

// Get returns the cart for the given session token. Unknown and expired
// tokens yield an empty cart.
func (s *CartService) Get(ctx context.Context, token string) (*CartResponse, error) {
	cart, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	response := ToCartResponse(cart)
	return &response, nil
}

// AddItem adds a product to the session's cart, or increments the existing
// line for the same product. The product must exist in the catalog; its
// current name, price and photo are captured onto the line.
func (s *CartService) AddItem(ctx context.Context, token string, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND",
				fmt.Sprintf("Product %d does not exist", req.ProductID))
		}
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	cart, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	before := cart.IDSet()
	cart.Add(req.ProductID, req.Quantity)
	cart.ApplySnapshot(product)
	if !cart.SameIDSet(before) {
		// the new line's snapshot is already fresh, only the others need it
		s.reconcile(ctx, cart, req.ProductID)
	}

	if err := s.store.Put(ctx, token, cart, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	logger.L(ctx).Info("cart item added",
		zap.Int64("product_id", req.ProductID),
		zap.Int("quantity", cart.Quantity(req.ProductID)))

	response := ToCartResponse(cart)
	return &response, nil
}

// UpdateQuantity sets the quantity of an existing cart line, clamping values
// below 1 to 1. An absent product id leaves the cart unchanged.
func (s *CartService) UpdateQuantity(ctx context.Context, token string, productID int64, quantity int) (*CartResponse, error) {
	cart, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	// identity set is unchanged by a quantity edit, so no reconciliation runs
	cart.SetQuantity(productID, quantity)

	if err := s.store.Put(ctx, token, cart, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	response := ToCartResponse(cart)
	return &response, nil
}

// RemoveItem deletes the cart line for the given product id. Absent ids are a
// no-op.
func (s *CartService) RemoveItem(ctx context.Context, token string, productID int64) (*CartResponse, error) {
	cart, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	before := cart.IDSet()
	cart.Remove(productID)
	if !cart.SameIDSet(before) {
		s.reconcile(ctx, cart)
	}

	if err := s.store.Put(ctx, token, cart, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	response := ToCartResponse(cart)
	return &response, nil
}

// Clear drops the session's cart entirely
func (s *CartService) Clear(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// reconcile refreshes each line's product snapshot from the catalog, skipping
// ids listed in fresh whose snapshots were captured moments ago. It runs only
// when the cart's product id set changed. All lookups must succeed: a single
// failure aborts the whole cycle and leaves every snapshot as it was, so the
// cart never holds a mix of old and new catalog data.
func (s *CartService) reconcile(ctx context.Context, cart *checkout.Cart, fresh ...int64) {
	ids := cart.ProductIDs()
	if len(fresh) > 0 {
		skip := make(map[int64]struct{}, len(fresh))
		for _, id := range fresh {
			skip[id] = struct{}{}
		}
		stale := ids[:0:0]
		for _, id := range ids {
			if _, ok := skip[id]; !ok {
				stale = append(stale, id)
			}
		}
		ids = stale
	}
	if len(ids) == 0 {
		return
	}

	products := make([]*catalog.Product, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			product, err := s.productRepo.FindByID(gctx, id)
			if err != nil {
				return fmt.Errorf("product %d: %w", id, err)
			}
			products[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.L(ctx).Warn("cart reconciliation aborted", zap.Error(err))
		return
	}

	for _, product := range products {
		cart.ApplySnapshot(product)
	}
}
