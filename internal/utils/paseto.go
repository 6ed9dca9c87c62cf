package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
	now          func() time.Time
}

var _ TokenMaker = (*PasetoMaker)(nil)

// NewPasetoMaker creates instance with existing key
func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
		now:          time.Now,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel. Wird verwendet, wenn kein hexKey vorhanden ist, nur einmal.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// CreateToken erstellt ein lokales V4 Token (encrypted)
func (m *PasetoMaker) CreateToken(claims SessionClaims, duration time.Duration) (string, *SessionPayload, error) {
	now := m.now()
	if claims.AuthTime.IsZero() {
		claims.AuthTime = now
	}

	token := paseto.NewToken()

	// Standard Claims festlegen
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(duration))
	token.SetAudience(tokenAudience)
	token.SetIssuer(tokenIssuer)
	token.SetSubject(claims.ID)

	// Benutzerdefiniert Claims festlegen
	token.SetString("userid", claims.UserID)
	token.SetString("role", claims.Role)
	token.SetString("org_id", claims.OrgID)
	token.SetString("jti", claims.SessionID)
	token.SetTime("auth_time", claims.AuthTime)

	// Encrypt mit V4 local (symmetric)
	encrypted := token.V4Encrypt(m.symmetricKey, nil)

	payload := &SessionPayload{
		ID:        claims.ID,
		UserID:    claims.UserID,
		Role:      claims.Role,
		OrgID:     claims.OrgID,
		SessionID: claims.SessionID,
		AuthTime:  claims.AuthTime,
		IssuedAt:  now,
		ExpiresAt: now.Add(duration),
	}

	return encrypted, payload, nil
}

// VerifyToken decrypts und überprüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*SessionPayload, error) {
	parser := paseto.NewParserWithoutExpiryCheck()

	// Validierungsregeln hinzufügen
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.IssuedBy(tokenIssuer))

	// Parse und decrypt mit symmetrischem Schlüssel
	parsedToken, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	exp, err := parsedToken.GetExpiration()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	nbf, err := parsedToken.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	// Zeitfenster selbst prüfen, damit die Uhr in Tests steuerbar bleibt.
	now := m.now()
	if now.Before(nbf) {
		return nil, fmt.Errorf("%w: token not yet valid", ErrInvalidToken)
	}
	if !now.Before(exp) {
		return nil, ErrExpiredToken
	}

	subject, err := parsedToken.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	iat, _ := parsedToken.GetIssuedAt()
	userID, _ := parsedToken.GetString("userid")
	role, _ := parsedToken.GetString("role")
	orgID, _ := parsedToken.GetString("org_id")
	jti, _ := parsedToken.GetString("jti")
	authTime, err := parsedToken.GetTime("auth_time")
	if err != nil {
		authTime = iat
	}

	payload := &SessionPayload{
		ID:        subject,
		UserID:    userID,
		Role:      role,
		OrgID:     orgID,
		SessionID: jti,
		AuthTime:  authTime,
		IssuedAt:  iat,
		ExpiresAt: exp,
	}

	return payload, nil
}
