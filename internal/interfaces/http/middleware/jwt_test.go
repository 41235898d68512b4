package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "storefront-test",
		MaxRefreshCount:        10,
	})
}

func issueToken(t *testing.T, jwtService *auth.JWTService, actor auth.Actor) (string, *auth.Claims) {
	t.Helper()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		StoreID:   uuid.New(),
		SubjectID: uuid.New(),
		Email:     "user@example.com",
		Actor:     actor,
		Role:      "owner",
	})
	require.NoError(t, err)
	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	return pair.AccessToken, claims
}

func authRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMerchantAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWT()
	blacklist := auth.NewInMemoryTokenBlacklist()

	engine := gin.New()
	engine.GET("/protected", MerchantAuth(jwtService, blacklist, zap.NewNop()), func(c *gin.Context) {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"store_id": claims.StoreID})
	})

	t.Run("accepts valid merchant token", func(t *testing.T) {
		token, _ := issueToken(t, jwtService, auth.ActorMerchant)
		w := authRequest(engine, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := authRequest(engine, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		w := authRequest(engine, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects customer token on merchant route", func(t *testing.T) {
		token, _ := issueToken(t, jwtService, auth.ActorCustomer)
		w := authRequest(engine, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects revoked token", func(t *testing.T) {
		token, claims := issueToken(t, jwtService, auth.ActorMerchant)
		require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Hour))
		w := authRequest(engine, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})

	t.Run("rejects token issued before subject revocation", func(t *testing.T) {
		token, claims := issueToken(t, jwtService, auth.ActorMerchant)
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, blacklist.RevokeAllForSubject(context.Background(), claims.SubjectID, time.Hour))
		w := authRequest(engine, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalCustomerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWT()

	engine := gin.New()
	engine.GET("/protected", OptionalCustomerAuth(jwtService), func(c *gin.Context) {
		if claims := GetClaims(c); claims != nil {
			c.JSON(http.StatusOK, gin.H{"authed": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authed": false})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		w := authRequest(engine, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "false")
	})

	t.Run("customer token attaches claims", func(t *testing.T) {
		token, _ := issueToken(t, jwtService, auth.ActorCustomer)
		w := authRequest(engine, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "true")
	})

	t.Run("merchant token is ignored", func(t *testing.T) {
		token, _ := issueToken(t, jwtService, auth.ActorMerchant)
		w := authRequest(engine, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "false")
	})
}
