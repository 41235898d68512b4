package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("creates active store", func(t *testing.T) {
		store, err := NewStore("Acme Pottery", "acme-pottery", "usd")
		require.NoError(t, err)
		assert.Equal(t, StoreStatusActive, store.Status)
		assert.Equal(t, "USD", store.CurrencyCode)
		assert.True(t, store.IsActive())
	})

	t.Run("rejects bad slug", func(t *testing.T) {
		for _, slug := range []string{"ab", "Has-Caps", "trailing-", "-leading", "sp ace"} {
			_, err := NewStore("Acme", slug, "USD")
			assert.Error(t, err, "slug %q", slug)
		}
	})

	t.Run("rejects bad currency", func(t *testing.T) {
		_, err := NewStore("Acme", "acme", "dollars")
		assert.Error(t, err)
	})
}

func TestStoreLifecycle(t *testing.T) {
	t.Run("suspend and reactivate", func(t *testing.T) {
		store, err := NewStore("Acme", "acme", "USD")
		require.NoError(t, err)

		require.NoError(t, store.Suspend())
		assert.False(t, store.IsActive())
		require.NotNil(t, store.SuspendedAt)

		require.NoError(t, store.Reactivate())
		assert.True(t, store.IsActive())
		assert.Nil(t, store.SuspendedAt)
	})

	t.Run("cannot reactivate an active store", func(t *testing.T) {
		store, err := NewStore("Acme", "acme", "USD")
		require.NoError(t, err)
		assert.Error(t, store.Reactivate())
	})

	t.Run("closed store cannot be suspended", func(t *testing.T) {
		store, err := NewStore("Acme", "acme", "USD")
		require.NoError(t, err)
		store.Close()
		assert.Error(t, store.Suspend())
	})
}
