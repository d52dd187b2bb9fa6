package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterEditable represents the data needed to sign up.
type RegisterEditable struct {
	Email    string `json:"email" example:"jamie@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	FullName string `json:"fullName" example:"Jamie Doe" default:""` // Stored on the profile
}

// LoginEditable represents the credentials needed to log in.
type LoginEditable struct {
	Email    string `json:"email" example:"jamie@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// AuthData is returned after a successful registration or login. The token
// goes into the Authorization header as "Bearer <token>".
type AuthData struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-18T09:16:00Z"`
	UserID    uuid.UUID `json:"userId" example:"d470b5c9-e351-4491-9a1c-c88e85a5a989"`
	Email     string    `json:"email" example:"jamie@example.com"`
}

type AuthResponse struct {
	Data  *AuthData `json:"data"`                                               // The issued token
	Error *string   `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
}
