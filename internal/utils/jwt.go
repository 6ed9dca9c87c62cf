package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const minJWTSecretLength = 32

// JWTMaker signiert Sitzungstokens als HS256-JWT.
type JWTMaker struct {
	secret []byte
	now    func() time.Time
}

var _ TokenMaker = (*JWTMaker)(nil)

type jwtSessionClaims struct {
	UserID   string           `json:"userid"`
	Role     string           `json:"role"`
	OrgID    string           `json:"org_id,omitempty"`
	AuthTime *jwt.NumericDate `json:"auth_time,omitempty"`
	jwt.RegisteredClaims
}

func NewJWTMaker(secret string) (*JWTMaker, error) {
	if len(secret) < minJWTSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minJWTSecretLength)
	}
	return &JWTMaker{secret: []byte(secret), now: time.Now}, nil
}

func (m *JWTMaker) CreateToken(claims SessionClaims, duration time.Duration) (string, *SessionPayload, error) {
	now := m.now().Truncate(time.Second)
	if claims.AuthTime.IsZero() {
		claims.AuthTime = now
	}
	claims.AuthTime = claims.AuthTime.Truncate(time.Second)

	c := jwtSessionClaims{
		UserID:   claims.UserID,
		Role:     claims.Role,
		OrgID:    claims.OrgID,
		AuthTime: jwt.NewNumericDate(claims.AuthTime),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.SessionID,
			Subject:   claims.ID,
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign jwt: %w", err)
	}

	return signed, &SessionPayload{
		ID:        claims.ID,
		UserID:    claims.UserID,
		Role:      claims.Role,
		OrgID:     claims.OrgID,
		SessionID: claims.SessionID,
		AuthTime:  claims.AuthTime,
		IssuedAt:  now,
		ExpiresAt: now.Add(duration),
	}, nil
}

func (m *JWTMaker) VerifyToken(tokenString string) (*SessionPayload, error) {
	var c jwtSessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(tokenAudience),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return nil, ErrInvalidToken
	}

	payload := &SessionPayload{
		ID:        c.Subject,
		UserID:    c.UserID,
		Role:      c.Role,
		OrgID:     c.OrgID,
		SessionID: c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		payload.IssuedAt = c.IssuedAt.Time
	}
	payload.AuthTime = payload.IssuedAt
	if c.AuthTime != nil {
		payload.AuthTime = c.AuthTime.Time
	}

	return payload, nil
}
