package handlers

import (
	"strings"

	"github.com/Xenn-00/signatur-portal/internal/dtos"
	organization_dto "github.com/Xenn-00/signatur-portal/internal/dtos/organization-dto"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt eine standardisierte, erfolgreiche WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetUserID(c *fiber.Ctx) (string, *app_errors.AppError) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return userID, nil
}

// GetSession liefert die von der AuthMiddleware gespeicherte Sitzung.
func GetSession(c *fiber.Ctx) (*utils.SessionPayload, *app_errors.AppError) {
	payload, ok := c.Locals("session").(*utils.SessionPayload)
	if !ok || payload == nil {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}
	return payload, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	return lang
}

func GetParamOrgID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param organization_dto.ParamOrgID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	// Params zeigen in den fasthttp-Puffer, der nach dem Request wiederverwendet wird.
	return strings.Clone(param.ID), nil
}

// WriteJSON schreibt die Antwort. Ein Fehler beim Schreiben wird zu 500.
func WriteJSON(c *fiber.Ctx, status int, body any) error {
	if err := c.Status(status).JSON(body); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
