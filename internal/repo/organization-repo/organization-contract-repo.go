package organization_repo

import (
	"context"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
)

// OrganizationRepoContract beschreibt den Zugriff auf die Organisations-API des Backends.
type OrganizationRepoContract interface {
	ListOrganizations(ctx context.Context, filter entity.OrganizationFilter) (*entity.OrganizationPage, *app_errors.AppError)
	GetOrganizationDetails(ctx context.Context, orgID string) (*entity.OrganizationDetails, *app_errors.AppError)
	CreateOrganization(ctx context.Context, model entity.OrganizationWrite) (*entity.OrganizationEntity, *app_errors.AppError)
	UpdateOrganization(ctx context.Context, orgID string, model entity.OrganizationWrite) (*entity.OrganizationEntity, *app_errors.AppError)
	DeleteOrganization(ctx context.Context, orgID string) *app_errors.AppError
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, *app_errors.AppError)
}
