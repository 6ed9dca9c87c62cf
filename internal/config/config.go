package config

import (
	"errors"
	"strings"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
			DB       int    `mapstructure:"DB"`
		}
	}

	APP_SECRET struct {
		TokenFormat string `mapstructure:"TOKEN_FORMAT"` // paseto | jwt
		Paseto      struct {
			HexKey string `mapstructure:"HEX_KEY"`
		}
		JWT struct {
			Secret string `mapstructure:"SECRET"`
		}
	}

	SESSION struct {
		TTL        time.Duration `mapstructure:"TTL"`
		MaxAge     time.Duration `mapstructure:"MAX_AGE"`
		CookieName string        `mapstructure:"COOKIE_NAME"`
	}

	THROTTLE struct {
		MaxAttempts   int           `mapstructure:"MAX_ATTEMPTS"`
		Window        time.Duration `mapstructure:"WINDOW"`
		Store         string        `mapstructure:"STORE"` // memory | redis
		MaxEntries    int           `mapstructure:"MAX_ENTRIES"`
		SweepInterval time.Duration `mapstructure:"SWEEP_INTERVAL"`
	}

	RATE_LIMIT struct {
		Max        int           `mapstructure:"MAX"`
		Expiration time.Duration `mapstructure:"EXPIRATION"`
		Storage    string        `mapstructure:"STORAGE"` // memory | redis
		RedisDB    int           `mapstructure:"REDIS_DB"`
	}

	BACKEND struct {
		BaseURL string        `mapstructure:"BASE_URL"`
		APIKey  string        `mapstructure:"API_KEY"`
		Timeout time.Duration `mapstructure:"TIMEOUT"`
	}

	WEBHOOK struct {
		SigningSecret string        `mapstructure:"SIGNING_SECRET"`
		Timeout       time.Duration `mapstructure:"TIMEOUT"`
	}
}

// IsProduction meldet, ob die App im Produktionsmodus läuft (sichere Cookies, JSON-Logs).
func (c *AppConfig) IsProduction() bool {
	return c.APP.State == "prod"
}

// LoadConfig liest application.yaml aus den angegebenen Pfaden (Standard: ".")
// und überschreibt Werte mit Umgebungsvariablen, z. B. BACKEND_API_KEY.
func LoadConfig(paths ...string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
		return nil, err
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil, err
	}

	applyDefaults(&config)

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Datenbank-DSN ist nicht konfiguriert")
		return nil, errors.New("database dsn is not configured")
	}

	if config.BACKEND.BaseURL == "" {
		log.Error().Msg("Backend-URL ist nicht konfiguriert")
		return nil, errors.New("backend base url is not configured")
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config, nil
}

func applyDefaults(config *AppConfig) {
	if config.APP.Name == "" {
		config.APP.Name = "signatur-portal"
	}
	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}

	if config.APP_SECRET.TokenFormat == "" {
		config.APP_SECRET.TokenFormat = "paseto"
	}
	if config.APP_SECRET.Paseto.HexKey == "" && config.APP_SECRET.TokenFormat == "paseto" {
		// Ohne festen Schlüssel überleben Sitzungen keinen Neustart.
		log.Warn().Msg("Kein Paseto-Schlüssel konfiguriert, es wird ein temporärer Schlüssel erzeugt")
		config.APP_SECRET.Paseto.HexKey = utils.GenerateSymmetricKey()
	}

	if config.SESSION.TTL <= 0 {
		config.SESSION.TTL = 24 * time.Hour
	}
	if config.SESSION.MaxAge <= 0 {
		config.SESSION.MaxAge = 7 * 24 * time.Hour
	}
	if config.SESSION.CookieName == "" {
		config.SESSION.CookieName = "token"
	}

	if config.THROTTLE.MaxAttempts <= 0 {
		config.THROTTLE.MaxAttempts = 5
	}
	if config.THROTTLE.Window <= 0 {
		config.THROTTLE.Window = 15 * time.Minute
	}
	if config.THROTTLE.Store == "" {
		config.THROTTLE.Store = "memory"
	}
	if config.THROTTLE.MaxEntries <= 0 {
		config.THROTTLE.MaxEntries = 10000
	}
	if config.THROTTLE.SweepInterval <= 0 {
		config.THROTTLE.SweepInterval = time.Minute
	}

	if config.RATE_LIMIT.Max <= 0 {
		config.RATE_LIMIT.Max = 120
	}
	if config.RATE_LIMIT.Expiration <= 0 {
		config.RATE_LIMIT.Expiration = time.Minute
	}
	if config.RATE_LIMIT.Storage == "" {
		config.RATE_LIMIT.Storage = "memory"
	}
	if config.RATE_LIMIT.RedisDB == 0 {
		config.RATE_LIMIT.RedisDB = config.DATABASE.Redis.DB + 1
	}

	if config.BACKEND.Timeout <= 0 {
		config.BACKEND.Timeout = 10 * time.Second
	}

	if config.WEBHOOK.Timeout <= 0 {
		config.WEBHOOK.Timeout = 10 * time.Second
	}
}
