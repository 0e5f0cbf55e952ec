package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/arganshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles catalog business operations. The storefront only
// reads the catalog; create/update/delete and photo uploads are admin-only.
type ProductService struct {
	productRepo     catalog.ProductRepository
	storage         ObjectStorageService
	uploadURLExpiry time.Duration
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, storage ObjectStorageService, uploadURLExpiry time.Duration) *ProductService {
	if uploadURLExpiry <= 0 {
		uploadURLExpiry = 15 * time.Minute
	}
	return &ProductService{
		productRepo:     productRepo,
		storage:         storage,
		uploadURLExpiry: uploadURLExpiry,
	}
}

// List returns the whole catalog in the shop's display order (id ascending)
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.NameEN, req.Price, req.Photo)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update applies partial changes to a product
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NameEN != nil {
		if err := product.Rename(*req.NameEN); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Photo != nil {
		product.SetPhoto(*req.Photo)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

// GeneratePhotoUploadURL issues a presigned URL for uploading a product
// photo. The object key embeds the product id and a random component so
// re-uploads never collide.
func (s *ProductService) GeneratePhotoUploadURL(ctx context.Context, productID int64, req PhotoUploadRequest) (*PhotoUploadResponse, error) {
	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Photo uploads must be images")
	}

	// Ensure the product exists before issuing a URL
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	ext := path.Ext(req.FileName)
	storageKey := fmt.Sprintf("products/%d/%s%s", productID, uuid.New().String(), ext)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, s.uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PhotoUploadResponse{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmPhotoUpload verifies the uploaded object exists and binds it to the
// product as its photo
func (s *ProductService) ConfirmPhotoUpload(ctx context.Context, productID int64, storageKey string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "Uploaded photo not found in storage")
	}

	product.SetPhoto(storageKey)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}
