package handler

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
)

// allowed image content types for upload URLs
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadHandler issues presigned upload URLs for product and banner
// images. Clients PUT the file straight to object storage and submit
// the resulting public URL with the product or banner payload.
type UploadHandler struct {
	BaseHandler
	storage   catalogapp.ImageStorage
	expiresIn time.Duration
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(storage catalogapp.ImageStorage) *UploadHandler {
	return &UploadHandler{
		storage:   storage,
		expiresIn: 15 * time.Minute,
	}
}

// UploadURLRequest asks for a presigned upload slot
type UploadURLRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	// Kind scopes the object key: product or banner imagery.
	Kind string `json:"kind" binding:"required,oneof=product banner logo"`
}

// UploadURLResponse carries the presigned URL and the final public URL
type UploadURLResponse struct {
	UploadURL  string    `json:"upload_url"`
	PublicURL  string    `json:"public_url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// CreateUploadURL issues a presigned PUT URL scoped to the store
func (h *UploadHandler) CreateUploadURL(c *gin.Context) {
	sID, err := storeID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		h.BadRequest(c, fmt.Sprintf("Unsupported content type %q", req.ContentType))
		return
	}

	storageKey := path.Join("stores", sID.String(), req.Kind, uuid.NewString()+ext)

	uploadURL, expiresAt, err := h.storage.GenerateUploadURL(c.Request.Context(), storageKey, contentType, h.expiresIn)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, UploadURLResponse{
		UploadURL:  uploadURL,
		PublicURL:  h.storage.PublicURL(storageKey),
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	})
}
