package routers

import (
	"net"
	"strconv"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	"github.com/rs/zerolog/log"
)

// GeneralLimiter begrenzt alle API-Anfragen pro Client-IP. Unabhängig von der Login-Sperre.
func GeneralLimiter(cfg RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Expiration,
		KeyGenerator: limiterKey,
		LimitReached: func(c *fiber.Ctx) error {
			return app_errors.NewAppError(fiber.StatusTooManyRequests, app_errors.ErrRateLimited, "request.too_many", nil)
		},
		Storage: cfg.Storage,
	})
}

// limiterKey nimmt ohne Proxy-Header die Peer-Adresse, sonst teilen sich alle direkten Clients einen Bucket.
func limiterKey(c *fiber.Ctx) string {
	ip := utils.GetClientIP(c)
	if ip == utils.UnknownClientIP {
		ip = c.IP()
	}
	return "api:" + ip
}

// NewLimiterStorage legt den Redis-Storage für den Limiter an, in einer eigenen Datenbank neben Cache und Queue.
func NewLimiterStorage(addr, password string, database int) *redis_fiber.Storage {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		host, portStr = addr, "6379"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Warn().Str("addr", addr).Msg("Ungültiger Redis-Port, verwende 6379")
		port = 6379
	}

	return redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: database,
	})
}
