package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mywebsite/privatemedia/internal/auth"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreFromClient(client), mr
}

func TestCreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	role, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, auth.RoleUser, time.Minute)
	require.NoError(t, err)

	_, err = store.Get(ctx, token)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, auth.RoleUser, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Second delete on an already-empty session is a no-op.
	assert.NoError(t, store.Delete(ctx, token))
}

func TestGetRejectsCorruptRole(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set(keyPrefix+"tampered", "ROOT"))

	_, err := store.Get(context.Background(), "tampered")
	assert.ErrorIs(t, err, ErrNoSession)
}
