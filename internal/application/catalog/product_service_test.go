package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByNamePattern(ctx context.Context, pattern string) (*catalog.Product, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockObjectStorage is a mock implementation of ObjectStorageService
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func testProduct(id int64, name string, price int64) *catalog.Product {
	product, _ := catalog.NewProduct(name, decimal.NewFromInt(price), "")
	product.ID = id
	return product
}

func TestProductService_List(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, nil, 0)

	repo.On("FindAll", mock.Anything).Return([]catalog.Product{
		*testProduct(1, "Pure Argan Oil 100ml", 250),
		*testProduct(2, "Argan Soap", 45),
	}, nil)

	responses, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, int64(1), responses[0].ID)
	assert.Equal(t, "Pure Argan Oil 100ml", responses[0].NameEN)
	// unset photos resolve to the placeholder
	assert.Equal(t, catalog.PlaceholderPhoto, responses[0].Photo)
	repo.AssertExpectations(t)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, nil, 0)

	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

	response, err := svc.GetByID(context.Background(), 99)

	assert.Nil(t, response)
	assert.Equal(t, shared.ErrNotFound, err)
	repo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	t.Run("creates valid product", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo, nil, 0)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		response, err := svc.Create(context.Background(), CreateProductRequest{
			NameEN: "Argan Shampoo",
			Price:  decimal.NewFromInt(80),
			Photo:  "shampoo.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, "Argan Shampoo", response.NameEN)
		assert.Equal(t, "shampoo.jpg", response.Photo)
		repo.AssertExpectations(t)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		repo := new(MockProductRepository)
		svc := NewProductService(repo, nil, 0)

		_, err := svc.Create(context.Background(), CreateProductRequest{
			NameEN: "Argan Shampoo",
			Price:  decimal.NewFromInt(-1),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRICE", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestProductService_Update(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, nil, 0)

	existing := testProduct(1, "Pure Argan Oil 100ml", 250)
	repo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	newPrice := decimal.NewFromInt(270)
	response, err := svc.Update(context.Background(), 1, UpdateProductRequest{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.True(t, response.Price.Equal(newPrice))
	assert.Equal(t, "Pure Argan Oil 100ml", response.NameEN, "name unchanged")
	repo.AssertExpectations(t)
}

func TestProductService_GeneratePhotoUploadURL(t *testing.T) {
	t.Run("issues presigned URL", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorage)
		svc := NewProductService(repo, storage, 15*time.Minute)

		repo.On("FindByID", mock.Anything, int64(1)).Return(testProduct(1, "Pure Argan Oil 100ml", 250), nil)

		expiresAt := time.Now().Add(15 * time.Minute)
		storage.On("GenerateUploadURL", mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > 0
		}), "image/jpeg", 15*time.Minute).Return("https://storage/upload", expiresAt, nil)

		response, err := svc.GeneratePhotoUploadURL(context.Background(), 1, PhotoUploadRequest{
			FileName:    "photo.jpg",
			ContentType: "image/jpeg",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://storage/upload", response.UploadURL)
		assert.Contains(t, response.StorageKey, "products/1/")
		assert.Contains(t, response.StorageKey, ".jpg")
		repo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("rejects non-image content type", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorage)
		svc := NewProductService(repo, storage, 0)

		_, err := svc.GeneratePhotoUploadURL(context.Background(), 1, PhotoUploadRequest{
			FileName:    "malware.exe",
			ContentType: "application/octet-stream",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CONTENT_TYPE", domainErr.Code)
		storage.AssertNotCalled(t, "GenerateUploadURL")
	})
}

func TestProductService_ConfirmPhotoUpload(t *testing.T) {
	t.Run("binds uploaded photo to product", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorage)
		svc := NewProductService(repo, storage, 0)

		product := testProduct(1, "Pure Argan Oil 100ml", 250)
		repo.On("FindByID", mock.Anything, int64(1)).Return(product, nil)
		storage.On("ObjectExists", mock.Anything, "products/1/abc.jpg").Return(true, nil)
		repo.On("Save", mock.Anything, product).Return(nil)

		response, err := svc.ConfirmPhotoUpload(context.Background(), 1, "products/1/abc.jpg")

		require.NoError(t, err)
		assert.Equal(t, "products/1/abc.jpg", response.Photo)
		repo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("rejects unknown upload", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorage)
		svc := NewProductService(repo, storage, 0)

		repo.On("FindByID", mock.Anything, int64(1)).Return(testProduct(1, "Pure Argan Oil 100ml", 250), nil)
		storage.On("ObjectExists", mock.Anything, "products/1/missing.jpg").Return(false, nil)

		_, err := svc.ConfirmPhotoUpload(context.Background(), 1, "products/1/missing.jpg")

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UPLOAD_NOT_FOUND", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}
