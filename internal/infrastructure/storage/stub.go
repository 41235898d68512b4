package storage

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// StubImageStorage is a placeholder implementation of ImageStorage for
// local development without an object store.
type StubImageStorage struct {
	// BaseURL is the base URL used for generated links
	BaseURL string
}

// NewStubImageStorage creates a new StubImageStorage
func NewStubImageStorage() *StubImageStorage {
	return &StubImageStorage{
		BaseURL: "https://storage.example.com",
	}
}

// Ensure StubImageStorage implements ImageStorage
var _ catalogapp.ImageStorage = (*StubImageStorage)(nil)

// GenerateUploadURL generates a fake presigned URL
func (s *StubImageStorage) GenerateUploadURL(_ context.Context, storageKey, _ string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), expiresAt, nil
}

// PublicURL returns a fake public URL for the object
func (s *StubImageStorage) PublicURL(storageKey string) string {
	return s.BaseURL + "/" + storageKey
}

// ObjectExists always reports true so the confirmation flow works in
// development.
func (s *StubImageStorage) ObjectExists(_ context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	return true, nil
}

// DeleteObject is a no-op
func (s *StubImageStorage) DeleteObject(_ context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	return nil
}
