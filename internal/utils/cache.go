package utils

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// GetCacheInto liest cacheKey aus Redis und entpackt den JSON-Wert (goccy/go-json) in dest.
// found ist false bei Cache-Miss, Redis- oder Unmarshal-Fehler liefern einen AppError.
func GetCacheInto(ctx context.Context, rdb redis.UniversalClient, cacheKey string, dest any) (bool, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return false, nil // Cache-miss
	} else if err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return true, nil
}

// SetCacheData serialisiert das gegebene Objekt als JSON und speichert es mit Ablaufzeit in Redis.
func SetCacheData(ctx context.Context, rdb redis.UniversalClient, cacheKey string, data any, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// DeleteCacheData löscht den angegebenen cacheKey aus Redis.
// Hinweis: kein Fehler, wenn Key bereits nicht existiert.
func DeleteCacheData(ctx context.Context, rdb redis.UniversalClient, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}
