package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/arganshop/backend/internal/domain/order"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists a new order row
func (r *GormOrderRepository) Create(ctx context.Context, record *order.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID finds an order row by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*order.Record, error) {
	var record order.Record
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAll returns all order rows, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]order.Record, error) {
	var records []order.Record
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByCheckoutID returns all rows written by one checkout submission,
// ordered by id ascending
func (r *GormOrderRepository) FindByCheckoutID(ctx context.Context, checkoutID uuid.UUID) ([]order.Record, error) {
	var records []order.Record
	if err := r.db.WithContext(ctx).
		Where("checkout_id = ?", checkoutID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindSiblings returns rows with customer fields identical to the anchor's
// and created_at within ±order.SiblingWindow of the anchor's, the anchor
// included. Legacy grouping for rows that predate checkout ids.
func (r *GormOrderRepository) FindSiblings(ctx context.Context, anchor *order.Record) ([]order.Record, error) {
	from := anchor.CreatedAt.Add(-order.SiblingWindow)
	to := anchor.CreatedAt.Add(order.SiblingWindow)

	var records []order.Record
	if err := r.db.WithContext(ctx).
		Where("name = ? AND email = ? AND phone = ? AND address = ?",
			anchor.Name, anchor.Email, anchor.Phone, anchor.Address).
		Where("created_at BETWEEN ? AND ?", from.UTC(), to.UTC()).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save persists changes to an existing row
func (r *GormOrderRepository) Save(ctx context.Context, record *order.Record) error {
	record.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes an order row by ID
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&order.Record{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)
