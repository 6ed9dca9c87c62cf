package middleware

import (
	"errors"
	"math"
	"strconv"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware rendert jeden Fehler als einheitliche JSON-Antwort.
// AppError behält Code und Typ, *fiber.Error seinen Statuscode, alles andere wird 500.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = c.Get("Accept-Language", "en")
		}

		var appErr *app_errors.AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
		case errors.As(err, &fiberErr):
			appErr = fromFiberError(fiberErr)
		default:
			appErr = app_errors.NewAppError(
				fiber.StatusInternalServerError,
				app_errors.ErrInternal,
				"internal_error",
				err,
			)
		}

		message := i18nSvc.T(lang, appErr.MessageKey, nil)

		reqID, _ := c.Locals("request_id").(string)

		respErr := fiber.Map{
			"code":       appErr.Code,
			"type":       appErr.Type,
			"message":    message,
			"request_id": reqID,
		}

		if len(appErr.Details) > 0 {
			var details []fiber.Map

			for _, d := range appErr.Details {
				details = append(details, fiber.Map{
					"field":  d.Field,
					"reason": d.Reason,
					"message": i18nSvc.T(
						lang,
						d.MessageKey,
						d.Params,
					),
				})
			}

			respErr["details"] = details
		}

		if appErr.RetryAfter > 0 {
			seconds := int(math.Ceil(appErr.RetryAfter.Seconds()))
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
		}

		if appErr.Code >= fiber.StatusInternalServerError {
			log.Error().Err(appErr.Err).Str("request_id", reqID).Str("type", appErr.Type).Msg("application error")
		} else if appErr.Err != nil {
			log.Debug().Err(appErr.Err).Str("request_id", reqID).Str("type", appErr.Type).Msg("request rejected")
		}

		return c.Status(appErr.Code).JSON(fiber.Map{
			"success": false,
			"status":  "error",
			"message": message,
			"error":   respErr,
		})
	}
}

func fromFiberError(e *fiber.Error) *app_errors.AppError {
	switch e.Code {
	case fiber.StatusNotFound:
		return app_errors.NewAppError(e.Code, app_errors.ErrNotFound, "not_found", e)
	case fiber.StatusTooManyRequests:
		return app_errors.NewAppError(e.Code, app_errors.ErrRateLimited, "request.too_many", e)
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
		return app_errors.NewAppError(e.Code, app_errors.ErrInvalidBody, "request.invalid_body", e)
	}
	if e.Code >= fiber.StatusInternalServerError {
		return app_errors.NewAppError(e.Code, app_errors.ErrInternal, "internal_error", e)
	}
	return app_errors.NewAppError(e.Code, app_errors.TypeForStatus(e.Code), "invalid_request", e)
}
