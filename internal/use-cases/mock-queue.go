package use_cases

import (
	"github.com/Xenn-00/signatur-portal/internal/queue"
	worker_task "github.com/Xenn-00/signatur-portal/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueOrganizationCreated(payload *worker_task.OrganizationCreatedPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
