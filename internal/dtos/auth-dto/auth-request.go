package auth_dto

// LoginRequest repräsentiert die Anmeldedaten eines Admins.
type LoginRequest struct {
	UserID   string `json:"userid" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginMetadata struct {
	UserAgent string
	IP        string
}
