package auth_case

import (
	"context"

	auth_dto "github.com/Xenn-00/signatur-portal/internal/dtos/auth-dto"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/Xenn-00/signatur-portal/internal/utils"
)

// AuthServiceContract reicht die Methoden für den AuthService weiter.
type AuthServiceContract interface {
	Authenticate(ctx context.Context, req auth_dto.LoginRequest, meta auth_dto.LoginMetadata) (*auth_dto.SessionResult, *app_errors.AppError)
	// ValidateSession liefert nil, wenn das Token fehlt, manipuliert oder abgelaufen ist.
	ValidateSession(token string) *utils.SessionPayload
	RefreshToken(ctx context.Context, token string) (*auth_dto.SessionResult, *app_errors.AppError)
}
