package auth_case

import (
	"context"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) FindByUserID(ctx context.Context, userID string) (*entity.AdminEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*app_errors.AppError)
	}
	return args.Get(0).(*entity.AdminEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAdminRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) *app_errors.AppError {
	args := m.Called(ctx, id, at)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAdminRepo) CreateAdmin(ctx context.Context, model entity.AdminEntity) (string, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.String(0), args.Get(1).(*app_errors.AppError)
}
