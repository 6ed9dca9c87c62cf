package organization_case

import (
	"context"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) ListOrganizations(ctx context.Context, filter entity.OrganizationFilter) (*entity.OrganizationPage, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.OrganizationPage), args.Get(1).(*app_errors.AppError)
}

func (m *MockOrganizationRepo) GetOrganizationDetails(ctx context.Context, orgID string) (*entity.OrganizationDetails, *app_errors.AppError) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.OrganizationDetails), args.Get(1).(*app_errors.AppError)
}

func (m *MockOrganizationRepo) CreateOrganization(ctx context.Context, model entity.OrganizationWrite) (*entity.OrganizationEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.OrganizationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockOrganizationRepo) UpdateOrganization(ctx context.Context, orgID string, model entity.OrganizationWrite) (*entity.OrganizationEntity, *app_errors.AppError) {
	args := m.Called(ctx, orgID, model)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.OrganizationEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockOrganizationRepo) DeleteOrganization(ctx context.Context, orgID string) *app_errors.AppError {
	args := m.Called(ctx, orgID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockOrganizationRepo) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, *app_errors.AppError) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.DashboardStats), args.Get(1).(*app_errors.AppError)
}
