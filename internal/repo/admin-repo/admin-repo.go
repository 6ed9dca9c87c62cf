package admin_repo

import (
	"context"
	"errors"
	"time"

	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier deckt *pgxpool.Pool und pgx.Tx ab.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type AdminRepo struct {
	db querier
}

func NewAdminRepo(db *pgxpool.Pool) AdminRepoContract {
	return &AdminRepo{
		db: db,
	}
}

// FindByUserID sucht ein aktives Admin-Konto anhand der Login-Kennung.
// Gibt 404 zurück, wenn kein (aktives) Konto existiert.
func (r *AdminRepo) FindByUserID(ctx context.Context, userID string) (*entity.AdminEntity, *app_errors.AppError) {
	query := `
		SELECT id, userid, password_hash, role, org_id, is_active, last_login_at, created_at, updated_at
		FROM admin_users
		WHERE userid = $1 AND is_active = TRUE
		LIMIT 1
	`

	var a entity.AdminEntity
	var role string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&a.ID, &a.UserID, &a.PasswordHash, &role, &a.OrgID, &a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	a.Role = entity.AdminRole(role)

	return &a, nil
}

func (r *AdminRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) *app_errors.AppError {
	query := `UPDATE admin_users SET last_login_at = $2, updated_at = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "not_found", nil)
	}
	return nil
}

// CreateAdmin legt ein neues Admin-Konto an und gibt dessen ID zurück.
// Eine bereits vergebene Login-Kennung führt zu 409.
func (r *AdminRepo) CreateAdmin(ctx context.Context, model entity.AdminEntity) (string, *app_errors.AppError) {
	if !model.Role.IsValid() {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "invalid_request", errors.New("invalid role"))
	}

	query := `
		INSERT INTO admin_users (id, userid, password_hash, role, org_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id string
	err := r.db.QueryRow(ctx, query,
		model.ID, model.UserID, model.PasswordHash, string(model.Role), model.OrgID, model.IsActive,
	).Scan(&id)
	if err != nil {
		return "", app_errors.MapPgxError(err)
	}

	return id, nil
}
