package auth_dto

import "time"

// SessionUser ist die Identität, die im Sitzungstoken steckt und an den Client geht.
type SessionUser struct {
	ID     string `json:"id"`
	UserID string `json:"userid"`
	Role   string `json:"role"`
	OrgID  string `json:"orgId,omitempty"`
}

// AuthResponse ist die Antwort der /api/auth-Endpunkte.
type AuthResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"`
	User      *SessionUser `json:"user,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// SessionResult ist das Ergebnis von Login und Refresh. Das Token geht nur in das Cookie.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	User      SessionUser
}
