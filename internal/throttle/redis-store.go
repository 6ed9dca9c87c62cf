package throttle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrStoreUnavailable = errors.New("throttle store unavailable")

const redisKeyPrefix = "login_attempts:"

// RedisStore teilt die Records zwischen mehreren Instanzen. Jeder Record ist ein Hash
// mit count und last (Unix-Millisekunden), der nach window ohne Fehlversuch verfällt.
type RedisStore struct {
	client redis.UniversalClient
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Record, error) {
	vals, err := s.client.HGetAll(ctx, redisKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return parseRecord(vals)
}

func (s *RedisStore) Increment(ctx context.Context, key string, now time.Time, window time.Duration) (*Record, error) {
	k := redisKey(key)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.HIncrBy(ctx, k, "count", 1)
		pipe.HSet(ctx, k, "last", now.UnixMilli())
		// Das Fenster läuft ab dem letzten Fehlversuch, danach verfällt der Record.
		pipe.PExpire(ctx, k, window)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &Record{
		Count:         int(incr.Val()),
		LastAttemptAt: time.UnixMilli(now.UnixMilli()),
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func parseRecord(vals map[string]string) (*Record, error) {
	count, err := strconv.Atoi(vals["count"])
	if err != nil {
		return nil, fmt.Errorf("corrupt throttle record count: %w", err)
	}
	last, err := strconv.ParseInt(vals["last"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt throttle record timestamp: %w", err)
	}
	return &Record{Count: count, LastAttemptAt: time.UnixMilli(last)}, nil
}
