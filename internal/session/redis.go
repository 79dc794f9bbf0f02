package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mywebsite/privatemedia/internal/auth"
)

const keyPrefix = "session:"

// RedisStore implements Store on a Redis backend. Expiry is delegated to
// Redis key TTLs, so an expired session simply disappears.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore and verifies connectivity.
func NewRedisStore(ctx context.Context, addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client. Used by tests.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create stores the role under a fresh UUID token with the given TTL.
func (s *RedisStore) Create(ctx context.Context, role auth.Role, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, string(role), ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves the token to its validated role.
func (s *RedisStore) Get(ctx context.Context, token string) (auth.Role, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	role, err := auth.ParseRole(val)
	if err != nil {
		// A corrupt or tampered role must not pass as authenticated.
		return "", ErrNoSession
	}
	return role, nil
}

// Delete removes the session. Absent tokens are ignored.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
