package middleware

import (
	"slices"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles prüft, ob die im Context unter "role" gespeicherte Rolle einer der erlaubten Rollen entspricht.
// Ohne Rolle 401, mit falscher Rolle 403.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
		}

		if slices.Contains(allowedRoles, role) {
			return c.Next()
		}
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.forbidden_role", nil)
	}
}

// RequireTenantAccess erlaubt Super-Admins jede Organisation, allen anderen nur die eigene (Pfadparameter param).
func RequireTenantAccess(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
		}

		orgID, _ := c.Locals("org_id").(string)
		if CanAccessTenant(role, orgID, c.Params(param)) {
			return c.Next()
		}
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.forbidden_tenant", nil)
	}
}

// CanAccessTenant: Super-Admin oder eigene Organisation. Eine leere Organisation berechtigt zu nichts.
func CanAccessTenant(role, sessionOrgID, requestedOrgID string) bool {
	if role == string(entity.SUPER_ADMIN) {
		return true
	}
	return sessionOrgID != "" && sessionOrgID == requestedOrgID
}
