package web_handlers

import (
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/handlers"
	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	auth_case "github.com/Xenn-00/signatur-portal/internal/use-cases/auth-case"
	organization_case "github.com/Xenn-00/signatur-portal/internal/use-cases/organization-case"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const layout = "layouts/main"

// WebHandler rendert die HTML-Seiten. Daten für das Dashboard kommen aus denselben Services wie die API.
type WebHandler struct {
	auth          auth_case.AuthServiceContract
	organizations organization_case.OrganizationServiceContract
	i18n          internal_i18n.Service
	cookie        utils.CookieConfig
	appName       string
}

func NewWebHandler(auth auth_case.AuthServiceContract, organizations organization_case.OrganizationServiceContract, i18n internal_i18n.Service, cookie utils.CookieConfig, appName string) *WebHandler {
	return &WebHandler{
		auth:          auth,
		organizations: organizations,
		i18n:          i18n,
		cookie:        cookie,
		appName:       appName,
	}
}

func (h *WebHandler) Landing(c *fiber.Ctx) error {
	return c.Render("landing", fiber.Map{
		"Title":    h.appName,
		"LoggedIn": h.auth.ValidateSession(c.Cookies(h.cookie.Name)) != nil,
	}, layout)
}

// LoginPage leitet angemeldete Admins direkt zum Dashboard weiter.
func (h *WebHandler) LoginPage(c *fiber.Ctx) error {
	if h.auth.ValidateSession(c.Cookies(h.cookie.Name)) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Title": h.appName,
	}, layout)
}

// Dashboard erwartet PageAuthMiddleware davor. Super-Admins sehen Statistiken, Mandanten-Admins ihre Organisation.
// Ein Backend-Fehler wird als Hinweis angezeigt, die Seite selbst bleibt erreichbar.
func (h *WebHandler) Dashboard(c *fiber.Ctx) error {
	session, appErr := handlers.GetSession(c)
	if appErr != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	data := fiber.Map{
		"Title": h.appName,
		"User":  auth_case.SessionUserFromPayload(session),
	}

	var loadErr *app_errors.AppError
	if auth_case.IsSuperAdmin(session) {
		data["Stats"], loadErr = h.organizations.GetDashboardStats(c.Context())
	} else if session.OrgID != "" {
		data["Organization"], loadErr = h.organizations.GetOrganizationDetails(c.Context(), session.OrgID)
	}

	if loadErr != nil {
		log.Warn().Err(loadErr).Str("request_id", handlers.GetRequestID(c)).Msg("Dashboard-Daten konnten nicht geladen werden")
		data["Error"] = h.i18n.T(handlers.GetLang(c), loadErr.MessageKey, nil)
	}

	return c.Render("dashboard", data, layout)
}
