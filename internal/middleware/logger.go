package middleware

import (
	"errors"
	"time"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware protokolliert eingehende Anfragen und deren Antworten.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		reqID, _ := c.Locals("request_id").(string)

		// Der ErrorHandler läuft erst nach dieser Middleware, der Status steht dann noch nicht fest.
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = log.Error()
		case status >= fiber.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.Str("request_id", reqID).
			Str("ip", c.IP()).
			Dur("duration", duration).
			Int("status", status).
			Msgf("%s %s", c.Method(), c.Path())

		return err
	}
}

func statusFromError(err error) int {
	var appErr *app_errors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
