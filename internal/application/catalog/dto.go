package catalog

import (
	"time"

	"github.com/arganshop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	NameEN string          `json:"nameEN" binding:"required,min=1,max=200"`
	Price  decimal.Decimal `json:"price" binding:"required"`
	Photo  string          `json:"photo" binding:"max=255"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	NameEN *string          `json:"nameEN" binding:"omitempty,min=1,max=200"`
	Price  *decimal.Decimal `json:"price"`
	Photo  *string          `json:"photo" binding:"omitempty,max=255"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        int64           `json:"id"`
	NameEN    string          `json:"nameEN"`
	Price     decimal.Decimal `json:"price"`
	Photo     string          `json:"photo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PhotoUploadResponse carries a presigned upload URL for a product photo
type PhotoUploadResponse struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// PhotoUploadRequest represents a request for a presigned photo upload URL
type PhotoUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,min=1,max=255"`
	ContentType string `json:"content_type" binding:"required"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		NameEN:    p.NameEN,
		Price:     p.Price,
		Photo:     p.PhotoOrPlaceholder(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
