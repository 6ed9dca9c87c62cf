package routers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ReadinessCheck prüft eine Abhängigkeit (Postgres, Redis) für /readyz.
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

const readinessTimeout = 2 * time.Second

// HealthRouter registriert Health- und Readiness-Endpoints auf dem gegebenen Fiber-Router.
func HealthRouter(app fiber.Router, checks []ReadinessCheck) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Health-OK",
			"message": "Service lebt.",
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})

	// /readyz prüft alle Abhängigkeiten der Reihe nach, der erste Fehler ergibt 503.
	app.Get("/readyz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check.Ping(ctx); err != nil {
				log.Warn().Err(err).Str("check", check.Name).Msg("Readiness-Check fehlgeschlagen")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "Fehlversuch",
					"error":  check.Name + " ist nicht bereit.",
				})
			}
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "Bereit",
			"message": "Alle Abhängigkeiten sind einsatzbereit.",
		})
	})
}
