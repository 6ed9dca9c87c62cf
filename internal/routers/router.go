package routers

import (
	"time"

	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	auth_case "github.com/Xenn-00/signatur-portal/internal/use-cases/auth-case"
	organization_case "github.com/Xenn-00/signatur-portal/internal/use-cases/organization-case"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// Deps bündelt alles, was die Router brauchen. Services werden in cmd/main.go gebaut.
type Deps struct {
	Auth          auth_case.AuthServiceContract
	Organizations organization_case.OrganizationServiceContract
	I18n          internal_i18n.Service
	Cookie        utils.CookieConfig
	AppName       string
	RateLimit     RateLimitConfig
	Checks        []ReadinessCheck
}

// RateLimitConfig für den allgemeinen API-Limiter. Ohne Storage zählt jede Instanz selbst.
type RateLimitConfig struct {
	Max        int
	Expiration time.Duration
	Storage    fiber.Storage
}

// SetupRoutes richtet die API- und Seitenrouten ein.
func SetupRoutes(app *fiber.App, deps Deps) {
	PageRouter(app, deps)

	api := app.Group("/api")
	HealthRouter(api, deps.Checks)

	api.Use(GeneralLimiter(deps.RateLimit))
	AuthRouter(api, deps)
	OrganizationRouter(api, deps)
}
