package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/star-hub/starid/internal/api/dto"
	"github.com/star-hub/starid/internal/model"
	"github.com/star-hub/starid/internal/model/user"
	"github.com/star-hub/starid/internal/serviceerrs"
	"github.com/star-hub/starid/internal/starid"
	"github.com/star-hub/starid/internal/utils/auth"
	"github.com/star-hub/starid/internal/utils/logger"
)

const (
	serviceMessage = "StarID Backend is running!"
	serviceVersion = "1.0.0"
)

// starid collision at insert is possible, the unique index rejects it
// and the handler regenerates
const maxGenerateAttempts = 3

type AuthHandler struct {
	repo   user.Repository
	secret string
	strict bool
}

func NewAuthHandler(repo user.Repository, secret string, strict bool,
) *AuthHandler {
	return &AuthHandler{
		repo:   repo,
		secret: secret,
		strict: strict,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to decode register request",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.strict {
		if err := req.Strict(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	// advisory pre-check, the unique index on email is the source of truth
	if h.repo.Exists(r.Context(), req.Email) {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to hash password",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := h.createWithFreshStarID(r.Context(), &user.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
	})
	if err != nil {
		if errors.Is(err, serviceerrs.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to create user",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RegisterResponse{
		Success: true,
		StarID:  id,
		Message: "StarID created successfully",
	})
}

func (h *AuthHandler) createWithFreshStarID(
	ctx context.Context, u *user.User,
) (string, error) {
	var err error
	for range maxGenerateAttempts {
		u.StarID, err = starid.New()
		if err != nil {
			return "", err
		}

		err = h.repo.Create(ctx, u)
		if err == nil {
			return u.StarID, nil
		}
		if !errors.Is(err, serviceerrs.ErrStarIDTaken) {
			return "", err
		}

		logger.FromContext(ctx).LogAttrs(ctx,
			slog.LevelWarn,
			"starid collision, regenerating",
			slog.String("starid", u.StarID),
		)
	}
	return "", err
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to decode login request",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.repo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to find user",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := auth.CheckPassword(req.Password, u.PasswordHash); err != nil {
		if errors.Is(err, serviceerrs.ErrInvalidPassword) {
			writeError(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := auth.BuildJWTString(u.StarID, u.Email, []byte(h.secret))
	if err != nil {
		log.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to issue token",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
		StarID:  u.StarID,
		User: dto.ProfileShort{
			Name:  u.Name,
			Email: u.Email,
		},
	})
}

type pinger interface {
	Ping(ctx context.Context) error
}

type ServiceHandler struct {
	db pinger
}

func NewServiceHandler(db pinger) *ServiceHandler {
	return &ServiceHandler{
		db: db,
	}
}

func (h *ServiceHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.InfoResponse{
		Message:   serviceMessage,
		Version:   serviceVersion,
		Endpoints: []string{"/api/register", "/api/login"},
	})
}

func (h *ServiceHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), model.DefaultTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to ping the DB",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set(model.HeaderContentType, model.ContentTypeJSON)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", model.KeyLoggerError, err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, dto.ErrorResponse{Error: msg})
}
