package auth_handlers

import (
	auth_dto "github.com/Xenn-00/signatur-portal/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/handlers"
	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	auth_case "github.com/Xenn-00/signatur-portal/internal/use-cases/auth-case"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
	cookie    utils.CookieConfig
}

func NewAuthHandler(service auth_case.AuthServiceContract, i18n internal_i18n.Service, cookie utils.CookieConfig) *AuthHandler {
	return &AuthHandler{
		validator: app_errors.NewValidator(),
		service:   service,
		i18n:      i18n,
		cookie:    cookie,
	}
}

// Login behandelt die Anmeldung eines Admins. Das Token geht ausschließlich in das Cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// 1. Anfrage parsen
	var req auth_dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	// 2. Validieren, bevor Throttle oder Datenbank etwas sehen
	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	// 3. Login metadata
	meta := auth_dto.LoginMetadata{
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IP:        utils.GetClientIP(c),
	}

	// 4. Service aufrufen
	result, err := h.service.Authenticate(c.Context(), req, meta)
	if err != nil {
		return err
	}

	// 5. Cookie setzen, Antwort zurückgeben
	utils.SetSessionCookie(c, h.cookie, result.Token)
	return handlers.WriteJSON(c, fiber.StatusOK, auth_dto.AuthResponse{
		Success:   true,
		Message:   h.i18n.T(handlers.GetLang(c), "response.success_login", nil),
		User:      &result.User,
		RequestID: handlers.GetRequestID(c),
	})
}

// Verify prüft das Sitzungs-Cookie. Ungültige Cookies werden gelöscht.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	payload := h.service.ValidateSession(c.Cookies(h.cookie.Name))
	if payload == nil {
		utils.ClearSessionCookie(c, h.cookie)
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.session_invalid", nil)
	}

	user := auth_case.SessionUserFromPayload(payload)
	return handlers.WriteJSON(c, fiber.StatusOK, auth_dto.AuthResponse{
		Success:   true,
		User:      &user,
		RequestID: handlers.GetRequestID(c),
	})
}

// Refresh stellt ein neues Token aus und ersetzt das Cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	result, err := h.service.RefreshToken(c.Context(), c.Cookies(h.cookie.Name))
	if err != nil {
		if err.Code == fiber.StatusUnauthorized {
			utils.ClearSessionCookie(c, h.cookie)
		}
		return err
	}

	utils.SetSessionCookie(c, h.cookie, result.Token)
	return handlers.WriteJSON(c, fiber.StatusOK, auth_dto.AuthResponse{
		Success:   true,
		Message:   h.i18n.T(handlers.GetLang(c), "response.success_refresh", nil),
		User:      &result.User,
		RequestID: handlers.GetRequestID(c),
	})
}

// Logout löscht nur das Cookie, Tokens werden serverseitig nicht gesperrt.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	utils.ClearSessionCookie(c, h.cookie)
	return handlers.WriteJSON(c, fiber.StatusOK, auth_dto.AuthResponse{
		Success:   true,
		Message:   h.i18n.T(handlers.GetLang(c), "response.success_logout", nil),
		RequestID: handlers.GetRequestID(c),
	})
}
