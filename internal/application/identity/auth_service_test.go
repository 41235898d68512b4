package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
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

func newAuthFixture(t *testing.T) (*AuthService, *MockUserRepository, *MockStoreRepository, *identity.Store, *identity.User) {
	t.Helper()

	userRepo := new(MockUserRepository)
	storeRepo := new(MockStoreRepository)
	svc := NewAuthService(userRepo, storeRepo, newTestJWT(), auth.NewInMemoryTokenBlacklist(), zap.NewNop())

	store, err := identity.NewStore("Acme Outfitters", "acme", "USD")
	require.NoError(t, err)
	user, err := identity.NewUser(store.ID, "owner@acme.test", "s3cret-pass", "Owner", identity.UserRoleOwner)
	require.NoError(t, err)

	return svc, userRepo, storeRepo, store, user
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login returns tokens and records login", func(t *testing.T) {
		svc, userRepo, storeRepo, store, user := newAuthFixture(t)

		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)
		userRepo.On("FindByEmail", mock.Anything, store.ID, "owner@acme.test").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		result, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "acme",
			Email:     "owner@acme.test",
			Password:  "s3cret-pass",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, "owner", result.User.Role)
		userRepo.AssertCalled(t, "Save", mock.Anything, user)
	})

	t.Run("unknown store yields invalid credentials", func(t *testing.T) {
		svc, _, storeRepo, _, _ := newAuthFixture(t)

		storeRepo.On("FindBySlug", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "ghost", Email: "a@b.c", Password: "whatever1",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		svc, userRepo, storeRepo, store, user := newAuthFixture(t)

		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)
		userRepo.On("FindByEmail", mock.Anything, store.ID, "owner@acme.test").Return(user, nil)

		_, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "acme", Email: "owner@acme.test", Password: "wrong-password",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("suspended store rejects login", func(t *testing.T) {
		svc, _, storeRepo, store, _ := newAuthFixture(t)
		require.NoError(t, store.Suspend())

		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)

		_, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "acme", Email: "owner@acme.test", Password: "s3cret-pass",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STORE_INACTIVE", domainErr.Code)
	})

	t.Run("disabled account rejects login", func(t *testing.T) {
		svc, userRepo, storeRepo, store, user := newAuthFixture(t)
		user.Disable()

		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)
		userRepo.On("FindByEmail", mock.Anything, store.ID, "owner@acme.test").Return(user, nil)

		_, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "acme", Email: "owner@acme.test", Password: "s3cret-pass",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DISABLED", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("valid refresh token issues a fresh pair", func(t *testing.T) {
		svc, userRepo, storeRepo, store, user := newAuthFixture(t)

		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)
		userRepo.On("FindByEmail", mock.Anything, store.ID, "owner@acme.test").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		login, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "acme", Email: "owner@acme.test", Password: "s3cret-pass",
		})
		require.NoError(t, err)

		refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Equal(t, user.ID, refreshed.User.ID)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _, _, _, _ := newAuthFixture(t)

		_, err := svc.Refresh(context.Background(), "garbage")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("logout blacklists the token", func(t *testing.T) {
		svc, userRepo, storeRepo, store, user := newAuthFixture(t)

		storeRepo.On("FindBySlug", mock.Anything, "acme").Return(store, nil)
		userRepo.On("FindByEmail", mock.Anything, store.ID, "owner@acme.test").Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		login, err := svc.Login(context.Background(), LoginInput{
			StoreSlug: "acme", Email: "owner@acme.test", Password: "s3cret-pass",
		})
		require.NoError(t, err)

		claims, err := svc.jwtService.ValidateAccessToken(login.AccessToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(context.Background(), claims))

		revoked, err := svc.blacklist.IsRevoked(context.Background(), claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("wrong current password is rejected", func(t *testing.T) {
		svc, userRepo, _, store, user := newAuthFixture(t)

		userRepo.On("FindByIDForStore", mock.Anything, store.ID, user.ID).Return(user, nil)

		err := svc.ChangePassword(context.Background(), store.ID, user.ID, ChangePasswordInput{
			CurrentPassword: "nope-nope-nope",
			NewPassword:     "new-password-1",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("success saves the user and revokes sessions", func(t *testing.T) {
		svc, userRepo, _, store, user := newAuthFixture(t)

		userRepo.On("FindByIDForStore", mock.Anything, store.ID, user.ID).Return(user, nil)
		userRepo.On("Save", mock.Anything, user).Return(nil)

		err := svc.ChangePassword(context.Background(), store.ID, user.ID, ChangePasswordInput{
			CurrentPassword: "s3cret-pass",
			NewPassword:     "new-password-1",
		})

		require.NoError(t, err)
		assert.True(t, user.CheckPassword("new-password-1"))

		revoked, err := svc.blacklist.IsSubjectRevoked(context.Background(), user.ID.String(), time.Now().Add(-time.Second))
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}
