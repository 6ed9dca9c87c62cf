package cache

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
)

// Cache ist ein JSON-Cache für Antworten des Backends.
type Cache interface {
	// Get entpackt den Wert unter key in dest; found ist false bei Cache-Miss.
	Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) error
}
