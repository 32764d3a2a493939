package dto

import (
	"errors"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Strict is an opt-in validation layer. The default service behavior is
// permissive: any email and password are accepted, exactly like the
// original backend. Enabled via the STRICT_VALIDATION config flag.
func (r *RegisterRequest) Strict() error {
	var invalidEmailErr error
	if r.Email == "" {
		invalidEmailErr = errors.New("email is empty")
	}

	const minEntropyBits = 50
	invalidPasswordErr := passwordvalidator.Validate(r.Password, minEntropyBits)
	return errors.Join(invalidEmailErr, invalidPasswordErr)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	StarID  string `json:"starid"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	StarID  string       `json:"starid"`
	User    ProfileShort `json:"user"`
}

type ProfileShort struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type InfoResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
