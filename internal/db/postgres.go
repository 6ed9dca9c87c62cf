package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ConnectPool richtet einen Verbindungs-Pool zur Admin-Datenbank ein und prüft ihn mit einem Ping.
func ConnectPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Err(err).Msg("Fehler beim Parsen der Datenbank-DSN")
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	// Admin-Logins sind selten, ein kleiner Pool reicht.
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = time.Hour
	cfg.HealthCheckPeriod = time.Minute * 5

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Err(err).Msg("Fehler beim Erstellen des Datenbank-Pools")
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Err(err).Msg("Datenbank ist nicht erreichbar")
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
