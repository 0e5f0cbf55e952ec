package handler

import (
	"strconv"

	catalogapp "github.com/arganshop/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ConfirmPhotoUploadRequest confirms a finished direct upload
type ConfirmPhotoUploadRequest struct {
	StorageKey string `json:"storage_key" binding:"required,max=255"`
}

// List returns all products in catalog order
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PhotoUploadURL issues a presigned URL for uploading a product photo
func (h *ProductHandler) PhotoUploadURL(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req catalogapp.PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	upload, err := h.productService.GeneratePhotoUploadURL(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, upload)
}

// ConfirmPhotoUpload records an uploaded photo on the product
func (h *ProductHandler) ConfirmPhotoUpload(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req ConfirmPhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	product, err := h.productService.ConfirmPhotoUpload(c.Request.Context(), id, req.StorageKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

func (h *ProductHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.BadRequest(c, "Invalid product id")
		return 0, false
	}
	return id, true
}
