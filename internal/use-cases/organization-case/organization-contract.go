package organization_case

import (
	"context"

	organization_dto "github.com/Xenn-00/signatur-portal/internal/dtos/organization-dto"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
)

type OrganizationServiceContract interface {
	ListOrganizations(ctx context.Context, q organization_dto.ListOrganizationsQuery) (*organization_dto.ListOrganizationsResponse, *app_errors.AppError)
	GetOrganizationDetails(ctx context.Context, orgID string) (*organization_dto.OrganizationDetailsResponse, *app_errors.AppError)
	CreateOrganization(ctx context.Context, req organization_dto.CreateOrganizationRequest, requestedBy string) (*organization_dto.OrganizationResponse, *app_errors.AppError)
	UpdateOrganization(ctx context.Context, orgID string, req organization_dto.UpdateOrganizationRequest) (*organization_dto.OrganizationResponse, *app_errors.AppError)
	DeleteOrganization(ctx context.Context, orgID string) *app_errors.AppError
	GetDashboardStats(ctx context.Context) (*organization_dto.DashboardStatsResponse, *app_errors.AppError)
}
