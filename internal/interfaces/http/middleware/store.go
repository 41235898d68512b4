package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/infrastructure/logger"
)

// storeIDKey is the gin context key holding the resolved store ID
const storeIDKey = "storefront_store_id"

// StoreResolver looks a storefront up by its URL slug. Implemented by
// the storefront browse service.
type StoreResolver interface {
	ResolveStoreID(ctx context.Context, slug string) (uuid.UUID, error)
}

// ResolveStore resolves the :slug path parameter to an active store and
// stashes its ID for the storefront handlers. Unknown or inactive
// stores are a 404, never an error detail leak.
func ResolveStore(resolver StoreResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			abortStoreNotFound(c)
			return
		}

		storeID, err := resolver.ResolveStoreID(c.Request.Context(), slug)
		if err != nil || storeID == uuid.Nil {
			abortStoreNotFound(c)
			return
		}

		c.Set(storeIDKey, storeID)

		ctx := logger.WithStoreID(c.Request.Context(), storeID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetStorefrontStoreID returns the store resolved from the URL slug
func GetStorefrontStoreID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(storeIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

func abortStoreNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "NOT_FOUND",
			"message": "Store not found",
		},
	})
}
