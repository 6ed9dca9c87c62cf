package worker

import (
	"context"

	worker_handler "github.com/Xenn-00/signatur-portal/internal/worker/handlers"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RunWorker startet den asynq-Server und blockiert, bis ctx beendet wird.
func RunWorker(ctx context.Context, rdb redis.UniversalClient, handler *worker_handler.WorkerHandler) error {
	srv := NewWorkerServer(rdb)

	mux := asynq.NewServeMux()
	RegisterWorkerHandlers(mux, handler)

	if err := srv.Start(mux); err != nil {
		return err
	}
	log.Info().Msg("Worker-Server läuft.")

	<-ctx.Done()
	log.Info().Msg("shutting down worker server...")
	srv.Shutdown()

	return nil
}
