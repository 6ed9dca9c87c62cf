package worker_handler

import (
	"context"
	"fmt"

	"github.com/Xenn-00/signatur-portal/internal/notify"
	worker_task "github.com/Xenn-00/signatur-portal/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// OrganizationCreated stellt das Event "organization.created" an die Webhook-URL der neuen Organisation zu.
func (wh *WorkerHandler) OrganizationCreated() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.OrganizationCreatedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Payload nicht lesbar")
			// Kaputte Payload wird durch Wiederholen nicht besser.
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if p.WebhookURL == "" {
			log.Warn().Str("organization_id", p.OrganizationID).Msg("Worker handler: keine Webhook-URL, übersprungen")
			return nil
		}

		event := notify.Event{
			Type:       notify.EventOrganizationCreated,
			OccurredAt: p.CreatedAt,
			Data: map[string]any{
				"id":    p.OrganizationID,
				"name":  p.Name,
				"email": p.Email,
			},
		}

		if err := wh.notifier.Send(ctx, p.WebhookURL, event); err != nil {
			log.Warn().Err(err).Str("organization_id", p.OrganizationID).Msg("Worker handler: Zustellung fehlgeschlagen")
			return err
		}

		log.Info().Str("organization_id", p.OrganizationID).Msg("Worker handler: Webhook zugestellt")
		return nil
	}
}
