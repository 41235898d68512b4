package catalog

import (
	"context"
	"time"
)

// ImageStorage is the port to object storage for product, category and
// banner images. Uploads go browser-direct through presigned URLs; the
// backend only hands out URLs and records the resulting public location.
type ImageStorage interface {
	// GenerateUploadURL returns a presigned PUT URL for the given key
	// and the time at which it expires.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// PublicURL returns the publicly servable URL for a stored object.
	PublicURL(storageKey string) string

	// ObjectExists reports whether an object has actually been uploaded.
	ObjectExists(ctx context.Context, storageKey string) (bool, error)

	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, storageKey string) error
}
