package organization_dto

type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,e164"`
	WebhookURL  string `json:"webhookUrl" validate:"required,http_url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateOrganizationRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,e164"`
	WebhookURL  string `json:"webhookUrl,omitempty" validate:"omitempty,http_url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

// IsEmpty meldet, ob keine Änderung angefragt wurde.
func (r UpdateOrganizationRequest) IsEmpty() bool {
	return r == UpdateOrganizationRequest{}
}

type ListOrganizationsQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search" validate:"omitempty,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=active inactive suspended"`
}

type ParamOrgID struct {
	ID string `params:"orgId" validate:"required,max=64"`
}
