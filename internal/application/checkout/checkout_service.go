package checkout

import (
	"context"
	"fmt"

	"github.com/arganshop/backend/internal/domain/checkout"
	"github.com/arganshop/backend/internal/domain/order"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/arganshop/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CheckoutService turns a session's cart into persisted order rows. One row is
// written per cart line; all rows of a submission share the same checkout id,
// customer fields and grand total.
type CheckoutService struct {
	store     checkout.Store
	orderRepo order.Repository
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(store checkout.Store, orderRepo order.Repository) *CheckoutService {
	return &CheckoutService{
		store:     store,
		orderRepo: orderRepo,
	}
}

// Submit validates the customer form and the cart, then writes one order row
// per cart line. Validation failures refuse the submission before anything is
// persisted. The grand total is computed once from the cart and duplicated on
// every row. Rows are inserted concurrently; if any insert fails the checkout
// reports failure and the cart is kept, with no compensation of rows that did
// land. On success the cart session is cleared.
func (s *CheckoutService) Submit(ctx context.Context, token string, req CheckoutRequest) (*CheckoutResponse, error) {
	customer := checkout.CustomerInfo{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		CouponCode: req.CouponCode,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	total := cart.Total()
	checkoutID := uuid.New()

	records := make([]*order.Record, len(cart.Lines))
	for i, line := range cart.Lines {
		record, err := order.NewRecord(checkoutID, customer, line.NameEN, line.Price, line.Quantity, total)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, record := range records {
		g.Go(func() error {
			return s.orderRepo.Create(gctx, record)
		})
	}
	if err := g.Wait(); err != nil {
		logger.L(ctx).Error("checkout failed",
			zap.String("checkout_id", checkoutID.String()),
			zap.Int("lines", len(records)),
			zap.Error(err))
		return nil, shared.NewDomainError("CHECKOUT_FAILED", "Checkout could not be completed")
	}

	if err := s.store.Delete(ctx, token); err != nil {
		// orders are already written; a stale cart session is the lesser problem
		logger.L(ctx).Warn("failed to clear cart after checkout",
			zap.String("checkout_id", checkoutID.String()),
			zap.Error(err))
	}

	orderIDs := make([]int64, len(records))
	for i, record := range records {
		orderIDs[i] = record.ID
	}

	logger.L(ctx).Info("checkout completed",
		zap.String("checkout_id", checkoutID.String()),
		zap.Int("lines", len(records)),
		zap.String("total", total.String()))

	return &CheckoutResponse{
		CheckoutID: checkoutID,
		OrderIDs:   orderIDs,
		Total:      total,
	}, nil
}
