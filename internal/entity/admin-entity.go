package entity

import "time"

// AdminEntity repräsentiert ein Admin-Konto in der Tabelle admin_users.
type AdminEntity struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userid"`
	PasswordHash string     `json:"-"`
	Role         AdminRole  `json:"role"`
	OrgID        *string    `json:"org_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AdminRole string

const (
	SUPER_ADMIN AdminRole = "super_admin"
	ADMIN       AdminRole = "admin"
)

func (r AdminRole) IsValid() bool {
	switch r {
	case SUPER_ADMIN, ADMIN:
		return true
	}

	return false
}

// TenantID liefert die Organisation des Admins oder "" für Super-Admins ohne Mandant.
func (a *AdminEntity) TenantID() string {
	if a.OrgID == nil {
		return ""
	}
	return *a.OrgID
}
