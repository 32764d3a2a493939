package dbmanager

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestQueryTracer(t *testing.T) {
	tests := []struct {
		name     string
		queryErr error
		want     string
	}{
		{
			name:     "query end logs the error",
			queryErr: errors.New("relation does not exist"),
			want:     "relation does not exist",
		},
		{
			name:     "successful query end stays silent",
			queryErr: nil,
			want:     "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			tracer := &queryTracer{
				log: slog.New(slog.NewTextHandler(
					&buf,
					&slog.HandlerOptions{Level: slog.LevelDebug},
				)),
			}

			ctx := tracer.TraceQueryStart(
				context.Background(),
				nil,
				pgx.TraceQueryStartData{SQL: "SELECT 1;"},
			)
			assert.Contains(t, buf.String(), "SELECT 1;")

			buf.Reset()
			tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: test.queryErr})
			if test.want == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), test.want)
			}
		})
	}
}
