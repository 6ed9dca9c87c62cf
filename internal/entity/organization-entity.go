package entity

import "time"

// Die Organisationstypen spiegeln das JSON-Format des Backends (camelCase).

type OrganizationStatus string

const (
	ORG_ACTIVE    OrganizationStatus = "active"
	ORG_INACTIVE  OrganizationStatus = "inactive"
	ORG_SUSPENDED OrganizationStatus = "suspended"
)

type OrganizationEntity struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone,omitempty"`
	WebhookURL  string             `json:"webhookUrl"`
	Description string             `json:"description,omitempty"`
	Status      OrganizationStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type OrganizationDetails struct {
	OrganizationEntity
	UserCount      int `json:"userCount"`
	DocumentCount  int `json:"documentCount"`
	SignatureCount int `json:"signatureCount"`
}

// OrganizationWrite ist der Body für Anlegen und Ändern. Leere Felder werden beim Ändern nicht gesendet.
type OrganizationWrite struct {
	Name        string             `json:"name,omitempty"`
	Email       string             `json:"email,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	WebhookURL  string             `json:"webhookUrl,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      OrganizationStatus `json:"status,omitempty"`
}

type OrganizationFilter struct {
	Page   int    `url:"page,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Search string `url:"search,omitempty"`
	Status string `url:"status,omitempty"`
}

type OrganizationPage struct {
	Organizations []OrganizationEntity `json:"organizations"`
	Total         int                  `json:"total"`
	Page          int                  `json:"page"`
	Limit         int                  `json:"limit"`
}

type DashboardStats struct {
	TotalOrganizations  int `json:"totalOrganizations"`
	ActiveOrganizations int `json:"activeOrganizations"`
	TotalUsers          int `json:"totalUsers"`
	TotalDocuments      int `json:"totalDocuments"`
	SignaturesThisMonth int `json:"signaturesThisMonth"`
}
