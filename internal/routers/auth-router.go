package routers

import (
	auth_handlers "github.com/Xenn-00/signatur-portal/internal/handlers/auth"
	"github.com/gofiber/fiber/v2"
)

// AuthRouter richtet die Authentifizierungsrouten ein. Login hat zusätzlich die IP-Sperre im AuthService.
func AuthRouter(api fiber.Router, deps Deps) {
	r := api.Group("/auth")
	authHandler := auth_handlers.NewAuthHandler(deps.Auth, deps.I18n, deps.Cookie)
	r.Post("/login", authHandler.Login)
	r.Get("/verify", authHandler.Verify)
	r.Post("/verify", authHandler.Refresh)
	r.Post("/logout", authHandler.Logout)
}
