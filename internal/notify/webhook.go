package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog/log"
)

const (
	SignatureHeader = "X-Signature"
	EventHeader     = "X-Event"

	EventOrganizationCreated = "organization.created"
)

// Event ist der JSON-Body, der an die Webhook-URL einer Organisation geht.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type Notifier interface {
	Send(ctx context.Context, url string, event Event) error
}

type WebhookService struct {
	secret []byte
	client *http.Client
}

func NewWebhookNotifier(signingSecret string, timeout time.Duration) *WebhookService {
	client := cleanhttp.DefaultClient()
	client.Timeout = timeout
	return &WebhookService{
		secret: []byte(signingSecret),
		client: client,
	}
}

// Sign liefert "sha256=<hex>" als HMAC-SHA256 über body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Send schickt das Event per POST. Jede Antwort außer 2xx ist ein Fehler, damit asynq wiederholt.
func (w *WebhookService) Send(ctx context.Context, url string, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Serialisieren des Webhook-Events")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventHeader, event.Type)
	if len(w.secret) > 0 {
		req.Header.Set(SignatureHeader, Sign(w.secret, body))
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Webhook nicht erreichbar")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook delivery failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	return nil
}
