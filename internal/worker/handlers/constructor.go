package worker_handler

import (
	"github.com/Xenn-00/signatur-portal/internal/notify"
)

type WorkerHandler struct {
	notifier notify.Notifier
}

func NewWorkerHandler(notifier notify.Notifier) *WorkerHandler {
	return &WorkerHandler{
		notifier: notifier,
	}
}
