package config

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_ProdWritesJSON(t *testing.T) {
	t.Cleanup(func() { SetupLoggerTo(&bytes.Buffer{}, "dev") })

	var buf bytes.Buffer
	SetupLoggerTo(&buf, "prod")

	log.Debug().Msg("versteckt")
	log.Info().Str("request_id", "SP-1").Msg("sichtbar")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "sichtbar", entry["message"])
	assert.Equal(t, "SP-1", entry["request_id"])
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupLogger_DevIsConsole(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(&buf, "dev")

	log.Debug().Msg("hallo")

	assert.Contains(t, buf.String(), "hallo")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
