package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_FromEnv_defaults(t *testing.T) {
	cfg := NewBuilder(slog.Default()).FromEnv().GetConfig()

	assert.Equal(t, ":3000", cfg.RunAddr)
	assert.Equal(t, "postgres://localhost:5432/starid?sslmode=disable", cfg.DatabaseURI)
	assert.Equal(t, "starid-secret-key-2024", cfg.SecretKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.StrictValidation)
}

func TestBuilder_FromEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:8088")
	t.Setenv("DATABASE_URI", "postgres://user:pass@db:5432/starid")
	t.Setenv("SECRET_KEY", "rotated-secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STRICT_VALIDATION", "true")

	cfg := NewBuilder(slog.Default()).FromEnv().GetConfig()

	assert.Equal(t, "localhost:8088", cfg.RunAddr)
	assert.Equal(t, "postgres://user:pass@db:5432/starid", cfg.DatabaseURI)
	assert.Equal(t, "rotated-secret", cfg.SecretKey)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictValidation)
}
