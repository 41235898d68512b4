package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/infrastructure/config"
)

func cartSessionEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.CookieConfig{Path: "/", SameSite: "lax"}
	engine := gin.New()
	engine.GET("/cart", CartSession(cfg, 3600), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": GetCartSessionID(c)})
	})
	return engine
}

func cartRequest(engine *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func issuedSessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CartSessionCookie {
			return c
		}
	}
	return nil
}

func TestCartSession(t *testing.T) {
	engine := cartSessionEngine()

	t.Run("issues a session cookie when absent", func(t *testing.T) {
		w := cartRequest(engine, "")
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := issuedSessionCookie(t, w)
		require.NotNil(t, cookie)
		_, err := uuid.Parse(cookie.Value)
		assert.NoError(t, err)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 3600, cookie.MaxAge)
		assert.Contains(t, w.Body.String(), cookie.Value)
	})

	t.Run("reuses a valid session cookie", func(t *testing.T) {
		existing := uuid.NewString()
		w := cartRequest(engine, existing)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, issuedSessionCookie(t, w))
		assert.Contains(t, w.Body.String(), existing)
	})

	t.Run("replaces a tampered cookie", func(t *testing.T) {
		w := cartRequest(engine, "not-a-uuid; DROP TABLE carts")
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := issuedSessionCookie(t, w)
		require.NotNil(t, cookie)
		_, err := uuid.Parse(cookie.Value)
		assert.NoError(t, err)
	})
}
