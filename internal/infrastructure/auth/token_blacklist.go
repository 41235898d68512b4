package auth

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist invalidates JWT tokens before their natural expiry,
// e.g. on logout or password change.
type TokenBlacklist interface {
	// Revoke adds a token's JTI to the blacklist. ttl should be the
	// remaining time until the token expires.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked checks whether a token's JTI has been blacklisted.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// RevokeAllForSubject invalidates every token issued to a subject
	// before now (force logout of all sessions).
	RevokeAllForSubject(ctx context.Context, subjectID string, ttl time.Duration) error

	// IsSubjectRevoked reports whether tokens issued at the given time
	// have been invalidated for the subject.
	IsSubjectRevoked(ctx context.Context, subjectID string, issuedAt time.Time) (bool, error)
}

// RedisTokenBlacklist implements TokenBlacklist on Redis.
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist creates a token blacklist backed by the given
// Redis client.
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "token:blacklist:",
	}
}

func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return b.keyPrefix + "jti:" + jti
}

func (b *RedisTokenBlacklist) subjectKey(subjectID string) string {
	return b.keyPrefix + "subject:" + subjectID
}

// Revoke adds a token's JTI to the blacklist
func (b *RedisTokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsRevoked checks if a token's JTI is in the blacklist
func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, b.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}

// RevokeAllForSubject stores the current timestamp; tokens issued at or
// before it are rejected.
func (b *RedisTokenBlacklist) RevokeAllForSubject(ctx context.Context, subjectID string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.subjectKey(subjectID), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke subject tokens: %w", err)
	}
	return nil
}

// IsSubjectRevoked checks if a token was issued before the subject's
// revocation timestamp.
func (b *RedisTokenBlacklist) IsSubjectRevoked(ctx context.Context, subjectID string, issuedAt time.Time) (bool, error) {
	val, err := b.client.Get(ctx, b.subjectKey(subjectID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check subject revocation: %w", err)
	}

	revokedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse revocation timestamp: %w", err)
	}

	return issuedAt.Unix() <= revokedAt, nil
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist is a process-local implementation for tests.
// Not suitable for multi-instance deployments.
type InMemoryTokenBlacklist struct {
	mu        sync.RWMutex
	jtis      map[string]time.Time // JTI -> blacklist entry expiry
	revokedAt map[string]time.Time // subjectID -> revocation time
}

// NewInMemoryTokenBlacklist creates an in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtis:      make(map[string]time.Time),
		revokedAt: make(map[string]time.Time),
	}
}

func (b *InMemoryTokenBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtis[jti] = time.Now().Add(ttl)
	return nil
}

func (b *InMemoryTokenBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiry, ok := b.jtis[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(b.jtis, jti)
		return false, nil
	}
	return true, nil
}

func (b *InMemoryTokenBlacklist) RevokeAllForSubject(_ context.Context, subjectID string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revokedAt[subjectID] = time.Now()
	return nil
}

func (b *InMemoryTokenBlacklist) IsSubjectRevoked(_ context.Context, subjectID string, issuedAt time.Time) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	revoked, ok := b.revokedAt[subjectID]
	if !ok {
		return false, nil
	}
	return issuedAt.UnixNano() <= revoked.UnixNano(), nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
