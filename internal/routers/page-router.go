package routers

import (
	"net/http"

	web_handlers "github.com/Xenn-00/signatur-portal/internal/handlers/web"
	"github.com/Xenn-00/signatur-portal/internal/middleware"
	"github.com/Xenn-00/signatur-portal/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// PageRouter registriert die HTML-Seiten und die statischen Dateien.
func PageRouter(app *fiber.App, deps Deps) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	h := web_handlers.NewWebHandler(deps.Auth, deps.Organizations, deps.I18n, deps.Cookie, deps.AppName)
	app.Get("/", h.Landing)
	app.Get("/login", h.LoginPage)
	app.Get("/dashboard", middleware.PageAuthMiddleware(deps.Auth, deps.Cookie), h.Dashboard)
}
