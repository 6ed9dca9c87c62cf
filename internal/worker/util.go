package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// maxRetryDelay begrenzt den exponentiellen Backoff der Webhook-Zustellung.
const maxRetryDelay = 10 * time.Minute

// retryDelay wartet 2^n Sekunden, höchstens maxRetryDelay.
func retryDelay(n int, _ error, _ *asynq.Task) time.Duration {
	if n > 10 {
		return maxRetryDelay
	}
	d := time.Duration(1<<uint(n)) * time.Second
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}

func logTaskError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	log.Error().
		Err(err).
		Str("task", task.Type()).
		Int("retry", retried).
		Int("max_retry", maxRetry).
		Msg("task failed")
}
