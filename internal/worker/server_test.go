package worker

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, time.Second, retryDelay(0, nil, nil))
	assert.Equal(t, 8*time.Second, retryDelay(3, nil, nil))
	assert.Equal(t, maxRetryDelay, retryDelay(10, nil, nil))
	assert.Equal(t, maxRetryDelay, retryDelay(50, nil, nil))
}

func TestNewWorkerServer_SharedRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	var rdb redis.UniversalClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	srv := NewWorkerServer(rdb)
	require.NotNil(t, srv)
	require.NoError(t, srv.Ping())

	srv.Shutdown()
	// Der Pool gehört dem Aufrufer und bleibt nach Shutdown nutzbar.
	assert.NoError(t, rdb.Ping(t.Context()).Err())
}
