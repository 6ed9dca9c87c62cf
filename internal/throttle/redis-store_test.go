package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_IncrementAndGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, err := store.Get(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, rec)

	for i := 1; i <= 3; i++ {
		rec, err = store.Increment(ctx, "203.0.113.7", now, 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, rec.Count)
	}

	rec, err = store.Get(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Count)
	assert.True(t, now.Equal(rec.LastAttemptAt))
	assert.Equal(t, 15*time.Minute, mr.TTL("login_attempts:203.0.113.7"))
}

func TestRedisStore_ExpiresAfterWindow(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.Increment(ctx, "ip", time.Now(), 15*time.Minute)
		require.NoError(t, err)
	}
	mr.FastForward(15 * time.Minute)

	rec, err := store.Get(ctx, "ip")
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = store.Increment(ctx, "ip", time.Now(), 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count)
}

func TestRedisStore_Reset(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	_, err := store.Increment(ctx, "ip", time.Now(), time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx, "ip"))
	assert.False(t, mr.Exists("login_attempts:ip"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Get(ctx, "ip")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.Increment(ctx, "ip", time.Now(), time.Minute)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestRedisStore_WithLimiter(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)
	l := NewLimiter(store, Config{MaxAttempts: 5, Window: 15 * time.Minute})

	for i := 0; i < 5; i++ {
		_, err := l.RecordFailure(ctx, "ip")
		require.NoError(t, err)
	}

	ok, retryAfter, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, retryAfter, 14*time.Minute)
}
