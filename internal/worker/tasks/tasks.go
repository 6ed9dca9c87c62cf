package worker_task

import "time"

const TaskOrganizationCreated = "webhook:organization_created"

const QueueWebhook = "webhook"

// MaxWebhookRetry ist die Anzahl der Wiederholungen, bevor asynq die Aufgabe archiviert.
const MaxWebhookRetry = 5

type OrganizationCreatedPayload struct {
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	WebhookURL     string    `json:"webhook_url"`
	CreatedAt      time.Time `json:"created_at"`
	RequestedBy    string    `json:"requested_by,omitempty"`
}
