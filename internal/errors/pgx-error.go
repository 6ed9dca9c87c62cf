package app_errors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPgxError übersetzt Postgres-Fehler in AppErrors.
func MapPgxError(err error) *AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		return NewAppError(404, ErrNotFound, "not_found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return NewAppError(409, ErrConflict, "conflict", err)
		case "23503", "23514": // foreign_key_violation, check_violation
			return NewAppError(400, ErrValidation, "invalid_request", err)
		}
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}
