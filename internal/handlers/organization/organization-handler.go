package organization_handlers

import (
	"strings"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	organization_dto "github.com/Xenn-00/signatur-portal/internal/dtos/organization-dto"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/handlers"
	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	organization_case "github.com/Xenn-00/signatur-portal/internal/use-cases/organization-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type OrganizationHandler struct {
	validator *validator.Validate
	service   organization_case.OrganizationServiceContract
	i18n      internal_i18n.Service
}

func NewOrganizationHandler(service organization_case.OrganizationServiceContract, i18n internal_i18n.Service) *OrganizationHandler {
	return &OrganizationHandler{
		validator: app_errors.NewValidator(),
		service:   service,
		i18n:      i18n,
	}
}

func (h *OrganizationHandler) ListOrganizations(c *fiber.Ctx) error {
	var q organization_dto.ListOrganizationsQuery
	if err := c.QueryParser(&q); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	q.Search = strings.Clone(q.Search)
	q.Status = strings.Clone(q.Status)

	if err := h.validator.Struct(q); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListOrganizations(c.Context(), q)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_list_organizations", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

// GetOrganizationDetails erwartet, dass RequireTenantAccess bereits geprüft hat.
func (h *OrganizationHandler) GetOrganizationDetails(c *fiber.Ctx) error {
	orgID, err := handlers.GetParamOrgID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetOrganizationDetails(c.Context(), orgID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_fetch_organization", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

// CreateOrganization validiert vollständig, bevor das Backend angefragt wird.
func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	var req organization_dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	userID, err := handlers.GetUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.CreateOrganization(c.Context(), req, userID)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_create_organization", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusCreated, webResp)
}

// UpdateOrganization: Mandanten-Admins dürfen ihre Organisation bearbeiten, den Status aber nur Super-Admins.
func (h *OrganizationHandler) UpdateOrganization(c *fiber.Ctx) error {
	orgID, err := handlers.GetParamOrgID(c, h.validator)
	if err != nil {
		return err
	}

	var req organization_dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if req.IsEmpty() {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", nil)
	}

	if req.Status != "" {
		role, _ := c.Locals("role").(string)
		if role != string(entity.SUPER_ADMIN) {
			return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.forbidden_role", nil)
		}
	}

	resp, err := h.service.UpdateOrganization(c.Context(), orgID, req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_organization", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

func (h *OrganizationHandler) DeleteOrganization(c *fiber.Ctx) error {
	orgID, err := handlers.GetParamOrgID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteOrganization(c.Context(), orgID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_organization", nil), fiber.Map{"id": orgID}, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

func (h *OrganizationHandler) GetDashboardStats(c *fiber.Ctx) error {
	resp, err := h.service.GetDashboardStats(c.Context())
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_fetch_stats", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}
