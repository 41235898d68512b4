package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// AuthService authenticates dashboard users against their store and
// manages the token lifecycle.
type AuthService struct {
	userRepo   identity.UserRepository
	storeRepo  identity.StoreRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	storeRepo identity.StoreRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a dashboard user and returns a token pair. The
// store slug scopes the email lookup, so the same email can exist in
// different stores.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	store, err := s.storeRepo.FindBySlug(ctx, input.StoreSlug)
	if err != nil {
		s.logger.Warn("login against unknown store", zap.String("store_slug", input.StoreSlug))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !store.IsActive() {
		return nil, shared.NewDomainError("STORE_INACTIVE", "This store is not active")
	}

	user, err := s.userRepo.FindByEmail(ctx, store.ID, input.Email)
	if err != nil {
		s.logger.Warn("login for unknown user",
			zap.String("store_slug", input.StoreSlug),
			zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account has been disabled")
	}
	if !user.CheckPassword(input.Password) {
		s.logger.Warn("invalid password attempt",
			zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		StoreID:   store.ID,
		SubjectID: user.ID,
		Email:     user.Email,
		Actor:     auth.ActorMerchant,
		Role:      string(user.Role),
	})
	if err != nil {
		s.logger.Error("failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds, only the bookkeeping is lost
		s.logger.Error("failed to record login", zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("store_id", store.ID.String()))

	return &LoginResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  NewUserView(user),
	}, nil
}

// Refresh exchanges a refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	if revoked, err := s.blacklist.IsRevoked(ctx, claims.ID); err == nil && revoked {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token has been revoked")
	}
	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	if revoked, err := s.blacklist.IsSubjectRevoked(ctx, claims.SubjectID, issuedAt); err == nil && revoked {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Session has been revoked")
	}

	userID, err := claims.GetSubjectUUID()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Account no longer exists")
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account has been disabled")
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken, user.Email, string(user.Role))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Failed to refresh tokens")
	}

	return &LoginResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  NewUserView(user),
	}, nil
}

// Logout revokes the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}
	return nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, storeID, userID uuid.UUID) (*UserView, error) {
	user, err := s.userRepo.FindByIDForStore(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	view := NewUserView(user)
	return &view, nil
}

// ChangePassword verifies the current password, sets the new one, and
// revokes every outstanding session for the user.
func (s *AuthService) ChangePassword(ctx context.Context, storeID, userID uuid.UUID, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByIDForStore(ctx, storeID, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(input.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := user.ChangePassword(input.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	refreshTTL := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.RevokeAllForSubject(ctx, user.ID.String(), refreshTTL); err != nil {
		s.logger.Error("failed to revoke sessions after password change", zap.Error(err))
	}

	return nil
}
