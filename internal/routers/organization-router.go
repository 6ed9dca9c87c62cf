package routers

import (
	"github.com/Xenn-00/signatur-portal/internal/entity"
	organization_handlers "github.com/Xenn-00/signatur-portal/internal/handlers/organization"
	"github.com/Xenn-00/signatur-portal/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func OrganizationRouter(api fiber.Router, deps Deps) {
	auth := middleware.AuthMiddleware(deps.Auth, deps.Cookie)
	superAdmin := middleware.RequireRoles(string(entity.SUPER_ADMIN))
	sameTenant := middleware.RequireTenantAccess("orgId")

	h := organization_handlers.NewOrganizationHandler(deps.Organizations, deps.I18n)

	r := api.Group("/organizations", auth)
	r.Get("/", superAdmin, h.ListOrganizations)
	r.Post("/", superAdmin, h.CreateOrganization)
	r.Get("/:orgId/details", sameTenant, h.GetOrganizationDetails)
	r.Put("/:orgId", sameTenant, h.UpdateOrganization)
	r.Delete("/:orgId", superAdmin, h.DeleteOrganization)

	api.Get("/dashboard/stats", auth, superAdmin, h.GetDashboardStats)
}
