package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
)

// Context keys for authenticated principals
const (
	ClaimsKey     = "auth_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds configuration for the JWT middleware
type AuthConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional; when set, revoked tokens and revoked
	// subjects are rejected.
	Blacklist auth.TokenBlacklist
	// Actor restricts which principal type the route accepts.
	Actor  auth.Actor
	Logger *zap.Logger
}

// MerchantAuth requires a valid merchant access token
func MerchantAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, log *zap.Logger) gin.HandlerFunc {
	return AuthWithConfig(AuthConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Actor:      auth.ActorMerchant,
		Logger:     log,
	})
}

// CustomerAuth requires a valid customer access token
func CustomerAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, log *zap.Logger) gin.HandlerFunc {
	return AuthWithConfig(AuthConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Actor:      auth.ActorCustomer,
		Logger:     log,
	})
}

// AuthWithConfig creates JWT authentication middleware
func AuthWithConfig(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			abortAuth(c, cfg, auth.ErrInvalidToken, "Missing or malformed authorization header")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortAuth(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.Actor != "" && claims.Actor != cfg.Actor {
			abortAuth(c, cfg, auth.ErrInvalidClaims, "Token is not valid for this resource")
			return
		}

		if cfg.Blacklist != nil && !checkBlacklist(c, cfg, claims) {
			return
		}

		c.Set(ClaimsKey, claims)

		// Enrich the request logger so downstream log lines carry the
		// store and subject.
		ctx := c.Request.Context()
		ctx = logger.WithStoreID(ctx, claims.StoreID)
		if claims.Actor == auth.ActorCustomer {
			ctx = logger.WithCustomerID(ctx, claims.SubjectID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// checkBlacklist rejects revoked tokens. Blacklist lookups that error
// fail open so an unavailable Redis does not take down the API.
func checkBlacklist(c *gin.Context, cfg AuthConfig, claims *auth.Claims) bool {
	ctx := c.Request.Context()

	if claims.ID != "" {
		revoked, err := cfg.Blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("token blacklist check failed",
					zap.String("jti", claims.ID), zap.Error(err))
			}
		} else if revoked {
			abortAuth(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
			return false
		}
	}

	if claims.SubjectID != "" {
		var issuedAt time.Time
		if claims.IssuedAt != nil {
			issuedAt = claims.IssuedAt.Time
		}
		revoked, err := cfg.Blacklist.IsSubjectRevoked(ctx, claims.SubjectID, issuedAt)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("subject revocation check failed",
					zap.String("subject_id", claims.SubjectID), zap.Error(err))
			}
		} else if revoked {
			abortAuth(c, cfg, auth.ErrTokenBlacklisted, "Session has been invalidated")
			return false
		}
	}

	return true
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" || !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, BearerPrefix)
	return token, token != ""
}

func abortAuth(c *gin.Context, cfg AuthConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("authentication rejected",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path))
	}

	code := "UNAUTHORIZED"
	msg := "Authentication required"
	switch err {
	case auth.ErrExpiredToken:
		code = "TOKEN_EXPIRED"
		msg = "Token has expired"
	case auth.ErrInvalidToken, auth.ErrInvalidClaims, auth.ErrInvalidTokenType:
		code = "INVALID_TOKEN"
		msg = message
	case auth.ErrTokenBlacklisted:
		code = "TOKEN_REVOKED"
		msg = message
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": msg,
		},
	})
}

// GetClaims retrieves validated claims from gin.Context
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// OptionalCustomerAuth extracts customer claims when a valid token is
// present but lets anonymous requests through. Storefront pages work
// logged out; checkout re-checks with CustomerAuth.
func OptionalCustomerAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			c.Next()
			return
		}
		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil || claims.Actor != auth.ActorCustomer {
			c.Next()
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
