package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Xenn-00/signatur-portal/internal/config"
	"github.com/Xenn-00/signatur-portal/internal/db"
	"github.com/Xenn-00/signatur-portal/internal/notify"
	"github.com/Xenn-00/signatur-portal/internal/worker"
	worker_handler "github.com/Xenn-00/signatur-portal/internal/worker/handlers"
	"github.com/rs/zerolog/log"
)

func main() {
	config.SetupLogger(os.Getenv("APP_STATE"))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Konfiguration konnte nicht geladen werden")
	}
	config.SetupLogger(cfg.APP.State)

	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis nicht erreichbar")
	}
	defer redisPool.Close()

	if cfg.WEBHOOK.SigningSecret == "" {
		log.Warn().Msg("Kein Webhook-Signaturschlüssel konfiguriert, Webhooks werden unsigniert versendet")
	}
	notifier := notify.NewWebhookNotifier(cfg.WEBHOOK.SigningSecret, cfg.WEBHOOK.Timeout)
	handler := worker_handler.NewWorkerHandler(notifier)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Starting worker server...")
	if err := worker.RunWorker(ctx, redisPool, handler); err != nil {
		log.Error().Err(err).Msg("worker crashed")
		return
	}
	log.Info().Msg("worker shutdown complete")
}
