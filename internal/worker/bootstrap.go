package worker

import (
	worker_handler "github.com/Xenn-00/signatur-portal/internal/worker/handlers"
	worker_task "github.com/Xenn-00/signatur-portal/internal/worker/tasks"
	"github.com/hibiken/asynq"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(worker_task.TaskOrganizationCreated, h.OrganizationCreated())
}
