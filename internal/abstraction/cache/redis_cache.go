package cache

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client redis.UniversalClient
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(redis redis.UniversalClient) *RedisCache {
	return &RedisCache{client: redis}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	return utils.GetCacheInto(ctx, r.client, key, dest)
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError {
	return utils.SetCacheData(ctx, r.client, key, value, ttl)
}

func (r *RedisCache) Del(ctx context.Context, key string) error {
	return utils.DeleteCacheData(ctx, r.client, key)
}
