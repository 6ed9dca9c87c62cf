package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger richtet den globalen zerolog-Logger ein: lesbare Konsole mit Debug-Level lokal, JSON mit Info-Level in Produktion.
func SetupLogger(state string) {
	SetupLoggerTo(os.Stderr, state)
}

func SetupLoggerTo(out io.Writer, state string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if state == "prod" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
}
