package catalog

import (
	"context"
	"time"
)

// ObjectStorageService abstracts the S3-compatible store that holds product
// photos. Uploads go through presigned URLs so photo bytes never pass through
// the API server.
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a photo.
	// Returns the upload URL and its expiration time.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a photo.
	// Returns the download URL and its expiration time.
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes a photo from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if a photo exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
