package auth_case

import (
	"context"
	"errors"
	"sync"
	"time"

	auth_dto "github.com/Xenn-00/signatur-portal/internal/dtos/auth-dto"
	"github.com/Xenn-00/signatur-portal/internal/entity"
	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	admin_repo "github.com/Xenn-00/signatur-portal/internal/repo/admin-repo"
	"github.com/Xenn-00/signatur-portal/internal/throttle"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	DefaultMaxAge     = 7 * 24 * time.Hour
)

type SessionConfig struct {
	TTL    time.Duration // Laufzeit eines einzelnen Tokens
	MaxAge time.Duration // maximale Zeit seit der Passwort-Anmeldung, bis zu der verlängert wird
}

type AuthService struct {
	repo    admin_repo.AdminRepoContract
	tokens  utils.TokenMaker
	limiter *throttle.Limiter
	config  SessionConfig
	now     func() time.Time
}

func NewAuthService(repo admin_repo.AdminRepoContract, tokens utils.TokenMaker, limiter *throttle.Limiter, cfg SessionConfig) AuthServiceContract {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
		config:  cfg,
		now:     time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnHash gleicht die Laufzeit für unbekannte Kennungen an die einer echten Passwortprüfung an.
func burnHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utils.GenerateHash("signatur-portal-dummy-password")
	})
	if dummyHash != "" {
		_, _ = utils.VerifyHash(dummyHash, password)
	}
}

// Authenticate prüft die Anmeldedaten eines Admins.
// Die Form der Anmeldedaten ist bereits validiert. Reihenfolge: Throttle, Konto, Passwort, Token.
func (s *AuthService) Authenticate(ctx context.Context, req auth_dto.LoginRequest, meta auth_dto.LoginMetadata) (*auth_dto.SessionResult, *app_errors.AppError) {
	ip := meta.IP
	if ip == "" {
		ip = utils.UnknownClientIP
	}

	// 1. Throttle
	allowed, retryAfter, err := s.limiter.Allow(ctx, ip)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Throttle-Store nicht verfügbar")
		return nil, app_errors.NewAppError(fiber.StatusServiceUnavailable, app_errors.ErrUnavailable, "service.unavailable", err)
	}
	if !allowed {
		log.Warn().Str("ip", ip).Dur("retry_after", retryAfter).Msg("Anmeldung gesperrt")
		return nil, app_errors.NewRateLimitError(retryAfter)
	}

	// 2. Konto suchen
	admin, appErr := s.repo.FindByUserID(ctx, req.UserID)
	if appErr != nil {
		if appErr.Code != fiber.StatusNotFound {
			return nil, appErr
		}
		burnHash(req.Password)
		return nil, s.failedAttempt(ctx, ip)
	}

	// 3. Passwort prüfen
	ok, hashErr := utils.VerifyHash(admin.PasswordHash, req.Password)
	if hashErr != nil {
		log.Error().Err(hashErr).Str("admin_id", admin.ID).Msg("Gespeicherter Passwort-Hash ist ungültig")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", hashErr)
	}
	if !ok {
		return nil, s.failedAttempt(ctx, ip)
	}

	// 4. Erfolgreich: Record löschen und Token erstellen
	if err := s.limiter.Reset(ctx, ip); err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Throttle-Record konnte nicht gelöscht werden")
	}

	sessionID, err := uuid.NewV7()
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	now := s.now()
	result, appErr := s.issue(utils.SessionClaims{
		ID:        admin.ID,
		UserID:    admin.UserID,
		Role:      string(admin.Role),
		OrgID:     admin.TenantID(),
		SessionID: sessionID.String(),
		AuthTime:  now,
	})
	if appErr != nil {
		return nil, appErr
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Warn().Err(err.Err).Str("admin_id", admin.ID).Msg("last_login_at konnte nicht aktualisiert werden")
	}

	log.Info().Str("admin_id", admin.ID).Str("ip", ip).Str("user_agent", meta.UserAgent).Msg("Admin angemeldet")
	return result, nil
}

func (s *AuthService) failedAttempt(ctx context.Context, ip string) *app_errors.AppError {
	rec, err := s.limiter.RecordFailure(ctx, ip)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Fehlversuch konnte nicht gezählt werden")
	} else {
		log.Debug().Str("ip", ip).Int("count", rec.Count).Msg("Fehlgeschlagene Anmeldung")
	}
	return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_credentials", nil)
}

func (s *AuthService) ValidateSession(token string) *utils.SessionPayload {
	if token == "" {
		return nil
	}
	payload, err := s.tokens.VerifyToken(token)
	if err != nil {
		if !errors.Is(err, utils.ErrExpiredToken) {
			log.Debug().Err(err).Msg("Sitzungstoken abgelehnt")
		}
		return nil
	}
	return payload
}

// RefreshToken stellt ein neues Token mit frischer Laufzeit aus. Das alte Token bleibt bis zu seinem Ablauf gültig.
// Verlängert wird nur, solange seit der Passwort-Anmeldung höchstens MaxAge vergangen ist.
func (s *AuthService) RefreshToken(ctx context.Context, token string) (*auth_dto.SessionResult, *app_errors.AppError) {
	payload := s.ValidateSession(token)
	if payload == nil {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.session_invalid", nil)
	}

	if s.now().Sub(payload.AuthTime) > s.config.MaxAge {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.session_too_old", nil)
	}

	return s.issue(utils.SessionClaims{
		ID:        payload.ID,
		UserID:    payload.UserID,
		Role:      payload.Role,
		OrgID:     payload.OrgID,
		SessionID: payload.SessionID,
		AuthTime:  payload.AuthTime,
	})
}

func (s *AuthService) issue(claims utils.SessionClaims) (*auth_dto.SessionResult, *app_errors.AppError) {
	token, payload, err := s.tokens.CreateToken(claims, s.config.TTL)
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Erstellen des Sitzungstokens")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return &auth_dto.SessionResult{
		Token:     token,
		ExpiresAt: payload.ExpiresAt,
		User:      SessionUserFromPayload(payload),
	}, nil
}

func SessionUserFromPayload(p *utils.SessionPayload) auth_dto.SessionUser {
	return auth_dto.SessionUser{
		ID:     p.ID,
		UserID: p.UserID,
		Role:   p.Role,
		OrgID:  p.OrgID,
	}
}

// IsSuperAdmin meldet, ob die Sitzung mandantenübergreifend ist.
func IsSuperAdmin(p *utils.SessionPayload) bool {
	return p != nil && p.Role == string(entity.SUPER_ADMIN)
}
