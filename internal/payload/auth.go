package payload

import "github.com/vasapolrittideah/e-comm-api/internal/model"

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login: the user record and
// a bearer token for subsequent requests.
type AuthResponse struct {
	User *model.User `json:"user"`
	Auth string      `json:"auth"`
}
