package queue

import (
	worker_task "github.com/Xenn-00/signatur-portal/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TaskQueueClient ist die Schnittstelle der Use-Cases zur Job-Queue.
type TaskQueueClient interface {
	EnqueueOrganizationCreated(payload *worker_task.OrganizationCreatedPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

var _ TaskQueueClient = (*TaskQueue)(nil)

func NewTaskQueue(redis redis.UniversalClient) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueOrganizationCreated(payload *worker_task.OrganizationCreatedPayload) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(
		worker_task.TaskOrganizationCreated,
		p,
		asynq.Queue(worker_task.QueueWebhook),
		asynq.MaxRetry(worker_task.MaxWebhookRetry),
	)

	info, err := q.client.Enqueue(task)
	if err != nil {
		return err
	}
	log.Debug().Str("task_id", info.ID).Str("organization_id", payload.OrganizationID).Msg("Webhook-Aufgabe eingereiht")
	return nil
}

// Close schließt nur den asynq-Client, der geteilte Redis-Client bleibt offen.
func (q *TaskQueue) Close() error {
	return q.client.Close()
}
