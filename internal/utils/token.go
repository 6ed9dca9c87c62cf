package utils

import (
	"errors"
	"fmt"
	"time"
)

const (
	tokenAudience = "signatur-portal"
	tokenIssuer   = "SP-service"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// SessionClaims sind die Daten, die beim Login in das Sitzungstoken geschrieben werden.
type SessionClaims struct {
	ID        string // subject: Admin-ID
	UserID    string
	Role      string
	OrgID     string
	SessionID string
	AuthTime  time.Time // Zeitpunkt der Passwort-Anmeldung, bleibt beim Refresh erhalten
}

// SessionPayload ist der verifizierte Inhalt eines Sitzungstokens.
type SessionPayload struct {
	ID        string
	UserID    string
	Role      string
	OrgID     string
	SessionID string
	AuthTime  time.Time
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenMaker erstellt und verifiziert Sitzungstokens.
type TokenMaker interface {
	CreateToken(claims SessionClaims, duration time.Duration) (string, *SessionPayload, error)
	VerifyToken(token string) (*SessionPayload, error)
}

// NewTokenMaker wählt die Token-Implementierung anhand des konfigurierten Formats.
func NewTokenMaker(format, pasetoHexKey, jwtSecret string) (TokenMaker, error) {
	switch format {
	case "", "paseto":
		return NewPasetoMaker(pasetoHexKey)
	case "jwt":
		return NewJWTMaker(jwtSecret)
	default:
		return nil, fmt.Errorf("unknown token format %q", format)
	}
}
