package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/backend/internal/application/shopping"
	domainshopping "github.com/storefront/backend/internal/domain/shopping"
)

// RedisCartStore persists carts in Redis as JSON snapshots keyed by the
// session token. Writes are last-writer-wins; a missing key loads as an
// empty cart.
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisCartStore creates a cart store backed by the given Redis
// client. Each write refreshes the TTL, so active carts stay alive and
// abandoned ones expire.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client:    client,
		keyPrefix: "cart:session:",
		ttl:       ttl,
	}
}

func (s *RedisCartStore) key(sessionID string) string {
	return s.keyPrefix + sessionID
}

// Load fetches the cart for a session, returning an empty cart when the
// key is missing or the payload cannot be decoded.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*domainshopping.Cart, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return domainshopping.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []domainshopping.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt snapshot is not worth failing the request over.
		return domainshopping.NewCart(), nil
	}

	return domainshopping.RestoreCart(items), nil
}

// Save stores the cart snapshot and refreshes the session TTL
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *domainshopping.Cart) error {
	data, err := json.Marshal(cart.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the cart for a session
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

var _ shopping.CartStore = (*RedisCartStore)(nil)
