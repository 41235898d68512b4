package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	storeID := uuid.New()

	t.Run("creates active user with hashed password", func(t *testing.T) {
		user, err := NewUser(storeID, "Owner@Example.com", "s3cretpass", "Owner", UserRoleOwner)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", user.Email)
		assert.True(t, user.IsOwner())
		assert.True(t, user.CheckPassword("s3cretpass"))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser(storeID, "a@b.com", "s3cretpass", "X", UserRole("admin"))
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser(storeID, "a@b.com", "short", "X", UserRoleStaff)
		assert.Error(t, err)
	})
}

func TestUserLifecycle(t *testing.T) {
	user, err := NewUser(uuid.New(), "staff@example.com", "s3cretpass", "Staff", UserRoleStaff)
	require.NoError(t, err)

	t.Run("promote to owner", func(t *testing.T) {
		require.NoError(t, user.SetRole(UserRoleOwner))
		assert.True(t, user.IsOwner())
	})

	t.Run("change password", func(t *testing.T) {
		require.NoError(t, user.ChangePassword("newpassword"))
		assert.True(t, user.CheckPassword("newpassword"))
		assert.False(t, user.CheckPassword("s3cretpass"))
	})

	t.Run("disable blocks login eligibility", func(t *testing.T) {
		user.Disable()
		assert.False(t, user.IsActive())
		user.Enable()
		assert.True(t, user.IsActive())
	})
}
