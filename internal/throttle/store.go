package throttle

import (
	"context"
	"time"
)

// Record zählt die fehlgeschlagenen Anmeldungen eines Clients.
type Record struct {
	Count         int       `json:"count"`
	LastAttemptAt time.Time `json:"last_attempt_at"`
}

// Store hält Records pro Client-Kennung. Implementierungen müssen nebenläufig sicher sein.
type Store interface {
	// Get liefert den Record oder nil, wenn keiner existiert.
	Get(ctx context.Context, key string) (*Record, error)
	// Increment erhöht den Zähler atomar und setzt LastAttemptAt auf now.
	// Ein Record, dessen Fenster abgelaufen ist, beginnt wieder bei 1.
	Increment(ctx context.Context, key string, now time.Time, window time.Duration) (*Record, error)
	// Reset entfernt den Record.
	Reset(ctx context.Context, key string) error
}
