package worker

import (
	worker_task "github.com/Xenn-00/signatur-portal/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// NewWorkerServer teilt sich den Redis-Pool mit dem Aufrufer. Shutdown schließt ihn nicht.
func NewWorkerServer(rdb redis.UniversalClient) *asynq.Server {
	return asynq.NewServerFromRedisClient(rdb, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			worker_task.QueueWebhook: 6,
			"default":                3,
			"low":                    1,
		},
		RetryDelayFunc: retryDelay,
		ErrorHandler:   asynq.ErrorHandlerFunc(logTaskError),
	})
}
