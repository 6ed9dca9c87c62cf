package admin_repo

import (
	"context"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
)

// AdminRepoContract reicht die Methoden für das AdminRepo weiter.
type AdminRepoContract interface {
	FindByUserID(ctx context.Context, userID string) (*entity.AdminEntity, *app_errors.AppError)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) *app_errors.AppError
	CreateAdmin(ctx context.Context, model entity.AdminEntity) (string, *app_errors.AppError)
}
