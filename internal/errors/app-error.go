package app_errors

import "time"

// AppError repräsentiert einen Anwendungsfehler mit einem Code, einer Nachricht und optional einem Feld.
type AppError struct {
	Code       int           // HTTP status code
	Type       string        // VALIDATION_ERROR, RATE_LIMITED, usw
	MessageKey string        // i18n key
	Details    []FieldError  // optional (validation)
	RetryAfter time.Duration // optional (rate limit), wird als Retry-After-Header gesendet
	Err        error         // original error (internal only)
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrRateLimited  = "RATE_LIMITED"
	ErrUpstream     = "UPSTREAM_ERROR"
	ErrUnavailable  = "SERVICE_UNAVAILABLE"
	ErrInternal     = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

// NewRateLimitError erstellt einen 429-Fehler, retryAfter ist die verbleibende Sperrzeit.
func NewRateLimitError(retryAfter time.Duration) *AppError {
	return &AppError{
		Code:       429,
		Type:       ErrRateLimited,
		MessageKey: "auth.too_many_attempts",
		RetryAfter: retryAfter,
	}
}

// TypeForStatus liefert den passenden Fehlertyp zu einem HTTP-Statuscode.
func TypeForStatus(code int) string {
	switch {
	case code == 400:
		return ErrValidation
	case code == 401:
		return ErrUnauthorized
	case code == 403:
		return ErrForbidden
	case code == 404:
		return ErrNotFound
	case code == 409:
		return ErrConflict
	case code == 429:
		return ErrRateLimited
	case code == 503:
		return ErrUnavailable
	case code >= 500:
		return ErrInternal
	default:
		return ErrValidation
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}

func (e *AppError) Unwrap() error {
	return e.Err
}
