package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/star-hub/starid/internal/model"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "uppercase", level: "ERROR", want: slog.LevelError},
		{name: "garbage falls back to info", level: "loud", want: slog.LevelInfo},
		{name: "empty falls back to info", level: "", want: slog.LevelInfo},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ParseLevel(test.level))
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	log := New(slog.LevelDebug)
	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}

func TestFromContextFallback(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
	}{
		{
			name: "empty context",
			ctx:  context.Background(),
		},
		{
			name: "wrong value type under the key",
			ctx: context.WithValue(
				context.Background(), model.KeyContextLogger, "not a logger"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Same(t, slog.Default(), FromContext(test.ctx))
		})
	}
}
