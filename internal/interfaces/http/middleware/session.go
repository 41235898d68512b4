package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/infrastructure/config"
)

// CartSessionCookie is the cookie carrying the anonymous cart session ID
const CartSessionCookie = "cart_session"

// cartSessionKey is the gin context key holding the resolved session ID
const cartSessionKey = "cart_session_id"

// CartSession assigns a cart session ID to every storefront request.
// An existing cookie is reused; otherwise a new ID is issued and set.
// The cart itself lives in Redis keyed by this ID.
func CartSession(cfg config.CookieConfig, maxAge int) gin.HandlerFunc {
	sameSite := parseSameSite(cfg.SameSite)

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CartSessionCookie)
		if err != nil || !validSessionID(sessionID) {
			sessionID = uuid.NewString()
			c.SetSameSite(sameSite)
			c.SetCookie(CartSessionCookie, sessionID, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
		}
		c.Set(cartSessionKey, sessionID)
		c.Next()
	}
}

// GetCartSessionID returns the cart session ID for the request
func GetCartSessionID(c *gin.Context) string {
	return c.GetString(cartSessionKey)
}

// validSessionID rejects cookie values we did not issue so arbitrary
// strings cannot be used as Redis keys.
func validSessionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
