package middleware

import (
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// SessionValidator prüft ein Sitzungstoken und liefert nil, wenn es ungültig ist.
type SessionValidator interface {
	ValidateSession(token string) *utils.SessionPayload
}

// AuthMiddleware liest das Sitzungs-Cookie und verifiziert das Token.
// Bei fehlendem, manipuliertem oder abgelaufenem Token wird das Cookie gelöscht und 401 zurückgegeben.
// Bei Erfolg stehen "user_id", "userid", "role", "org_id" und "session" in c.Locals.
func AuthMiddleware(sessions SessionValidator, cookie utils.CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := sessions.ValidateSession(c.Cookies(cookie.Name))
		if payload == nil {
			utils.ClearSessionCookie(c, cookie)
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.session_invalid", nil)
		}

		storeSession(c, payload)
		return c.Next()
	}
}

// PageAuthMiddleware ist die Variante für HTML-Seiten: ohne gültige Sitzung geht es zu /login.
func PageAuthMiddleware(sessions SessionValidator, cookie utils.CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := sessions.ValidateSession(c.Cookies(cookie.Name))
		if payload == nil {
			utils.ClearSessionCookie(c, cookie)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		storeSession(c, payload)
		return c.Next()
	}
}

func storeSession(c *fiber.Ctx, payload *utils.SessionPayload) {
	c.Locals("user_id", payload.ID)
	c.Locals("userid", payload.UserID)
	c.Locals("role", payload.Role)
	c.Locals("org_id", payload.OrgID)
	c.Locals("session", payload)
}
