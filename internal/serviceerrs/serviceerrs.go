package serviceerrs

import "errors"

var (
	ErrUserExists      = errors.New("user already exists")
	ErrStarIDTaken     = errors.New("starid already taken")
	ErrNotFound        = errors.New("not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrTokenExpired    = errors.New("token expired")
	ErrUnexpected      = errors.New("unexpected error")
)
