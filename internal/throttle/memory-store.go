package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultMaxEntries = 10000

// MemoryStore hält Records im Prozess. Der Speicher ist durch maxEntries begrenzt,
// abgelaufene Records werden von Run periodisch entfernt.
type MemoryStore struct {
	mu         sync.Mutex
	records    map[string]Record
	window     time.Duration
	maxEntries int
	now        func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(window time.Duration, maxEntries int) *MemoryStore {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		records:    make(map[string]Record),
		window:     window,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryStore) Increment(_ context.Context, key string, now time.Time, window time.Duration) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || now.Sub(rec.LastAttemptAt) >= window {
		if !ok && len(s.records) >= s.maxEntries {
			s.evictOldestLocked()
		}
		rec = Record{}
	}
	rec.Count++
	rec.LastAttemptAt = now
	s.records[key] = rec

	out := rec
	return &out, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

// Len liefert die Anzahl gespeicherter Records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Sweep entfernt alle Records, deren Fenster abgelaufen ist, und liefert deren Anzahl.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, rec := range s.records {
		if now.Sub(rec.LastAttemptAt) >= s.window {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}

// Run ruft Sweep im angegebenen Intervall auf, bis ctx beendet wird.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Msg("Abgelaufene Anmeldeversuche entfernt")
			}
		}
	}
}

// evictOldestLocked entfernt den Record mit dem ältesten Fehlversuch. s.mu muss gehalten werden.
func (s *MemoryStore) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	first := true
	for key, rec := range s.records {
		if first || rec.LastAttemptAt.Before(oldest) {
			oldestKey, oldest, first = key, rec.LastAttemptAt, false
		}
	}
	if !first {
		delete(s.records, oldestKey)
	}
}
