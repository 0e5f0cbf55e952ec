package order

import (
	"context"
	"fmt"

	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/arganshop/backend/internal/domain/order"
	"github.com/arganshop/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService implements the admin-facing order operations
type OrderService struct {
	orderRepo   order.Repository
	productRepo catalog.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo order.Repository, productRepo catalog.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// List returns all order rows, newest first
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	records, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return ToOrderResponses(records), nil
}

// GetByID returns a single order row
func (s *OrderService) GetByID(ctx context.Context, id int64) (*OrderResponse, error) {
	record, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(record)
	return &response, nil
}

// GetDetails expands one order row into the full checkout it belongs to.
// Rows written with a checkout id are grouped by it; older rows without one
// fall back to grouping by identical customer fields within the sibling time
// window. Each line's photo is recovered from the current catalog by product
// name.
func (s *OrderService) GetDetails(ctx context.Context, id int64) (*OrderDetailsResponse, error) {
	anchor, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var group []order.Record
	if anchor.CheckoutID != uuid.Nil {
		group, err = s.orderRepo.FindByCheckoutID(ctx, anchor.CheckoutID)
	} else {
		group, err = s.orderRepo.FindSiblings(ctx, anchor)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to group order rows: %w", err)
	}
	if len(group) == 0 {
		group = []order.Record{*anchor}
	}

	items := make([]OrderItemDetail, len(group))
	for i := range group {
		row := &group[i]
		items[i] = OrderItemDetail{
			OrderID:      row.ID,
			ProductName:  row.ProductName,
			ProductPrice: row.ProductPrice,
			Quantity:     row.Quantity,
			Photo:        s.recoverPhoto(ctx, row.ProductName),
			Amount:       row.ProductPrice.Mul(decimal.NewFromInt(int64(row.Quantity))),
		}
	}

	return &OrderDetailsResponse{
		AnchorID:   anchor.ID,
		CheckoutID: anchor.CheckoutID,
		Name:       anchor.Name,
		Email:      anchor.Email,
		Phone:      anchor.Phone,
		Address:    anchor.Address,
		CouponCode: anchor.CouponCode,
		Status:     anchor.Status.String(),
		Total:      anchor.Total,
		Items:      items,
		CreatedAt:  anchor.CreatedAt,
	}, nil
}

// UpdateStatus moves an order row through its lifecycle
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*OrderResponse, error) {
	record, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := record.UpdateStatus(order.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	logger.L(ctx).Info("order status updated",
		zap.Int64("order_id", id),
		zap.String("status", req.Status))

	response := ToOrderResponse(record)
	return &response, nil
}

// Delete removes an order row
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.L(ctx).Info("order deleted", zap.Int64("order_id", id))
	return nil
}

// recoverPhoto resolves a line's photo from the current catalog. Order rows
// store only the product name, so the lookup is a case-insensitive name match;
// anything that fails resolves to the placeholder.
func (s *OrderService) recoverPhoto(ctx context.Context, productName string) string {
	product, err := s.productRepo.FindByNamePattern(ctx, productName)
	if err != nil {
		return catalog.PlaceholderPhoto
	}
	return product.PhotoOrPlaceholder()
}
