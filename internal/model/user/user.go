package user

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	StarID       string    `json:"starid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	Exists(ctx context.Context, email string) bool
}
