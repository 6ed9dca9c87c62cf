package throttle

import (
	"context"
	"time"
)

const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 15 * time.Minute
)

type Config struct {
	MaxAttempts int
	Window      time.Duration
}

// Limiter entscheidet, ob ein Anmeldeversuch zugelassen wird.
// Gesperrt ist ein Client, solange Count >= MaxAttempts und seit dem letzten
// Fehlversuch weniger als Window vergangen ist.
type Limiter struct {
	store  Store
	config Config
	now    func() time.Time
}

func NewLimiter(store Store, cfg Config) *Limiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	return &Limiter{
		store:  store,
		config: cfg,
		now:    time.Now,
	}
}

// Allow prüft den Client. retryAfter ist bei Sperre die verbleibende Zeit bis zum Fensterende.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	rec, err := l.store.Get(ctx, key)
	if err != nil {
		return false, 0, err
	}
	if rec == nil || rec.Count < l.config.MaxAttempts {
		return true, 0, nil
	}

	elapsed := l.now().Sub(rec.LastAttemptAt)
	if elapsed >= l.config.Window {
		return true, 0, nil
	}

	return false, l.config.Window - elapsed, nil
}

// RecordFailure zählt einen fehlgeschlagenen Versuch.
func (l *Limiter) RecordFailure(ctx context.Context, key string) (*Record, error) {
	return l.store.Increment(ctx, key, l.now(), l.config.Window)
}

// Reset löscht den Record nach erfolgreicher Anmeldung.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *Limiter) Window() time.Duration {
	return l.config.Window
}
