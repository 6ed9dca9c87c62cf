package main

// Package main startet das Signatur-Portal: Konfiguration, Postgres und Redis,
// Token-Maker, Login-Sperre, Services, Fiber mit Middleware, Seiten und API.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/abstraction/cache"
	"github.com/Xenn-00/signatur-portal/internal/config"
	"github.com/Xenn-00/signatur-portal/internal/db"
	"github.com/Xenn-00/signatur-portal/internal/i18n"
	"github.com/Xenn-00/signatur-portal/internal/middleware"
	"github.com/Xenn-00/signatur-portal/internal/queue"
	admin_repo "github.com/Xenn-00/signatur-portal/internal/repo/admin-repo"
	organization_repo "github.com/Xenn-00/signatur-portal/internal/repo/organization-repo"
	"github.com/Xenn-00/signatur-portal/internal/routers"
	"github.com/Xenn-00/signatur-portal/internal/throttle"
	auth_case "github.com/Xenn-00/signatur-portal/internal/use-cases/auth-case"
	organization_case "github.com/Xenn-00/signatur-portal/internal/use-cases/organization-case"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/Xenn-00/signatur-portal/web"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	config.SetupLogger(os.Getenv("APP_STATE"))

	// 0. I18N
	i18nSvc := i18n.NewInitI18nService()

	// 1. Konfiguration laden
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Konfiguration konnte nicht geladen werden")
	}
	config.SetupLogger(cfg.APP.State)

	// 2. Postgres- und Redis-Pool
	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	dbPool, err := db.ConnectPool(rootCtx, cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Datenbank nicht erreichbar")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis nicht erreichbar")
	}

	// 3. Token-Maker
	tokens, err := utils.NewTokenMaker(cfg.APP_SECRET.TokenFormat, cfg.APP_SECRET.Paseto.HexKey, cfg.APP_SECRET.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("Token-Maker konnte nicht erstellt werden")
	}

	// 4. Login-Sperre
	var store throttle.Store
	switch cfg.THROTTLE.Store {
	case "redis":
		store = throttle.NewRedisStore(redisPool)
	default:
		mem := throttle.NewMemoryStore(cfg.THROTTLE.Window, cfg.THROTTLE.MaxEntries)
		go mem.Run(rootCtx, cfg.THROTTLE.SweepInterval)
		store = mem
	}
	limiter := throttle.NewLimiter(store, throttle.Config{
		MaxAttempts: cfg.THROTTLE.MaxAttempts,
		Window:      cfg.THROTTLE.Window,
	})
	log.Info().Str("store", cfg.THROTTLE.Store).Int("max_attempts", cfg.THROTTLE.MaxAttempts).Dur("window", cfg.THROTTLE.Window).Msg("Login-Sperre aktiv")

	// 5. Services
	taskQueue := queue.NewTaskQueue(redisPool)
	authSvc := auth_case.NewAuthService(admin_repo.NewAdminRepo(dbPool), tokens, limiter, auth_case.SessionConfig{
		TTL:    cfg.SESSION.TTL,
		MaxAge: cfg.SESSION.MaxAge,
	})
	orgSvc := organization_case.NewOrganizationService(
		organization_repo.NewOrganizationRepo(cfg.BACKEND.BaseURL, cfg.BACKEND.APIKey, cfg.BACKEND.Timeout),
		cache.NewRedisCache(redisPool),
		taskQueue,
	)

	// 6. Fiber-App mit ErrorHandler, Views und Middleware
	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		Views:        html.NewFileSystem(http.FS(web.Templates()), ".html"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	rateLimit := routers.RateLimitConfig{
		Max:        cfg.RATE_LIMIT.Max,
		Expiration: cfg.RATE_LIMIT.Expiration,
	}
	if cfg.RATE_LIMIT.Storage == "redis" {
		limiterStorage := routers.NewLimiterStorage(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.RATE_LIMIT.RedisDB)
		defer limiterStorage.Close()
		rateLimit.Storage = limiterStorage
	}

	// 7. Routen
	routers.SetupRoutes(app, routers.Deps{
		Auth:          authSvc,
		Organizations: orgSvc,
		I18n:          i18nSvc,
		Cookie: utils.CookieConfig{
			Name:   cfg.SESSION.CookieName,
			Secure: cfg.IsProduction(),
			MaxAge: cfg.SESSION.TTL,
		},
		AppName:   cfg.APP.Name,
		RateLimit: rateLimit,
		Checks: []routers.ReadinessCheck{
			{Name: "Redis", Ping: func(ctx context.Context) error { return redisPool.Ping(ctx).Err() }},
			{Name: "Datenbank", Ping: dbPool.Ping},
		},
	})

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Der Server konnte nicht gestartet werden")
		}
	}()

	// 8. Graceful Shutdown bei SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("Beim Herunterfahren ist ein Fehler aufgetreten")
	}

	cancelRoot()
	if err := taskQueue.Close(); err != nil {
		log.Warn().Err(err).Msg("Queue-Client konnte nicht geschlossen werden")
	}
	if err := redisPool.Close(); err != nil {
		log.Warn().Err(err).Msg("Redis-Pool konnte nicht geschlossen werden")
	}
	dbPool.Close()
	log.Info().Msg("Server ordnungsgemäß heruntergefahren.")
}
