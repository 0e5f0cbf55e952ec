package persistence

import (
	"context"
	"errors"

	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/arganshop/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll returns the whole catalog ordered by id ascending
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByNamePattern finds the first product whose name contains the given
// fragment, case-insensitively. Returns shared.ErrNotFound when nothing matches.
func (r *GormProductRepository) FindByNamePattern(ctx context.Context, pattern string) (*catalog.Product, error) {
	if pattern == "" {
		return nil, shared.ErrNotFound
	}
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("name_en ILIKE ?", "%"+pattern+"%").
		Order("id ASC").
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
