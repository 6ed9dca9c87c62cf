package throttle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter() (*Limiter, *MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(DefaultWindow, 100)
	store.now = clock.Now
	l := NewLimiter(store, Config{MaxAttempts: 5, Window: 15 * time.Minute})
	l.now = clock.Now
	return l, store, clock
}

func TestLimiter_BlocksAfterFiveFailures(t *testing.T) {
	ctx := context.Background()
	l, _, clock := newTestLimiter()

	for i := 1; i <= 5; i++ {
		ok, _, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be admitted", i)

		rec, err := l.RecordFailure(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.Equal(t, i, rec.Count)
		clock.Advance(time.Minute)
	}

	ok, retryAfter, err := l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 14*time.Minute, retryAfter)

	// Andere Clients sind nicht betroffen.
	ok, _, err = l.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiter_WindowElapsedForgivesAndRestartsCount(t *testing.T) {
	ctx := context.Background()
	l, _, clock := newTestLimiter()

	for i := 0; i < 5; i++ {
		_, err := l.RecordFailure(ctx, "ip")
		require.NoError(t, err)
	}
	ok, _, _ := l.Allow(ctx, "ip")
	require.False(t, ok)

	clock.Advance(15 * time.Minute)

	ok, _, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := l.RecordFailure(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count)
}

func TestLimiter_ResetClearsRecord(t *testing.T) {
	ctx := context.Background()
	l, store, _ := newTestLimiter()

	for i := 0; i < 3; i++ {
		_, err := l.RecordFailure(ctx, "ip")
		require.NoError(t, err)
	}
	require.NoError(t, l.Reset(ctx, "ip"))
	assert.Equal(t, 0, store.Len())

	rec, err := l.RecordFailure(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*Record, error) {
	return nil, ErrStoreUnavailable
}
func (failingStore) Increment(context.Context, string, time.Time, time.Duration) (*Record, error) {
	return nil, ErrStoreUnavailable
}
func (failingStore) Reset(context.Context, string) error { return ErrStoreUnavailable }

func TestLimiter_StoreErrorPropagates(t *testing.T) {
	l := NewLimiter(failingStore{}, Config{})

	ok, _, err := l.Allow(context.Background(), "ip")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
}

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(NewMemoryStore(0, 0), Config{})
	assert.Equal(t, DefaultMaxAttempts, l.config.MaxAttempts)
	assert.Equal(t, DefaultWindow, l.Window())
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Now()}
	store := NewMemoryStore(15*time.Minute, 100)
	store.now = clock.Now

	_, err := store.Increment(ctx, "old", clock.Now(), 15*time.Minute)
	require.NoError(t, err)
	clock.Advance(10 * time.Minute)
	_, err = store.Increment(ctx, "fresh", clock.Now(), 15*time.Minute)
	require.NoError(t, err)
	clock.Advance(6 * time.Minute)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	rec, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMemoryStore_EvictsOldestAtCapacity(t *testing.T) {
	ctx := context.Background()
	base := time.Now()
	store := NewMemoryStore(time.Hour, 3)

	for i, key := range []string{"a", "b", "c"} {
		_, err := store.Increment(ctx, key, base.Add(time.Duration(i)*time.Second), time.Hour)
		require.NoError(t, err)
	}
	_, err := store.Increment(ctx, "d", base.Add(10*time.Second), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())
	rec, _ := store.Get(ctx, "a")
	assert.Nil(t, rec)
	rec, _ = store.Get(ctx, "d")
	assert.NotNil(t, rec)
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour, 100)
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Increment(ctx, "ip", now, time.Hour)
		}()
	}
	wg.Wait()

	rec, err := store.Get(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 50, rec.Count)
}

func TestMemoryStore_RunStopsOnCancel(t *testing.T) {
	store := NewMemoryStore(time.Millisecond, 10)
	_, _ = store.Increment(context.Background(), "ip", time.Now().Add(-time.Second), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
