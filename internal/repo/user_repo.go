package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/star-hub/starid/internal/model"
	"github.com/star-hub/starid/internal/model/user"
	"github.com/star-hub/starid/internal/serviceerrs"
)

type UserRepository struct {
	DB
}

func NewUserRepository(pool connectionPool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create inserts a new user record. The unique indexes on email and
// starid are the actual uniqueness guarantee, any pre-check by the
// caller is advisory.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	const query = `
INSERT INTO users (id, starid, email, password_hash, name, created_at)
VALUES ($1, $2, $3, $4, $5, $6);`

	createLogic := func() (struct{}, error) {
		_, err := r.pool.Exec(ctx, query,
			u.ID, u.StarID, u.Email, u.PasswordHash, u.Name, u.CreatedAt)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to insert user: %w", err)
		}
		return struct{}{}, nil
	}

	if _, err := WithRetry[struct{}](createLogic, 0); err != nil {
		return convertUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string,
) (user.User, error) {
	const query = `
SELECT id, starid, email, password_hash, name, created_at
FROM users
WHERE email = $1;`

	findLogic := func() (user.User, error) {
		var u user.User
		err := r.pool.QueryRow(ctx, query, email).Scan(
			&u.ID, &u.StarID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.User{}, serviceerrs.ErrNotFound
			}
			return user.User{}, fmt.Errorf("failed to find user by email: %w", err)
		}
		return u, nil
	}

	u, err := WithRetry[user.User](findLogic, 0)
	if err != nil {
		return user.User{}, err //nolint: wrapcheck // error from wrapped function
	}
	return u, nil
}

func (r *UserRepository) Exists(ctx context.Context, email string) bool {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1);`

	existsLogic := func() (bool, error) {
		var exists bool
		if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
			r.log.LogAttrs(ctx,
				slog.LevelError,
				"failed to check if email exists in DB",
				slog.Any(model.KeyLoggerError, err),
			)
			return false, nil
		}
		return exists, nil
	}

	exists, _ := WithRetry[bool](existsLogic, 0)
	return exists
}

func convertUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "starid") {
		return serviceerrs.ErrStarIDTaken
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return serviceerrs.ErrUserExists
	}
	return err
}
