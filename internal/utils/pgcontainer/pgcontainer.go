// Package pgcontainer runs a throwaway Postgres in Docker for
// integration tests.
package pgcontainer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/star-hub/starid/internal/model"
)

const (
	testDBName       = "test"
	testUserName     = "test"
	testUserPassword = "test"

	defaultPostgresTag = "16"
)

type PGContainer struct {
	log       *slog.Logger
	pool      *dockertest.Pool
	container *dockertest.Resource
	dsn       string
}

func New(log *slog.Logger) *PGContainer {
	return &PGContainer{
		log:       log,
		pool:      nil,
		container: nil,
		dsn:       "",
	}
}

func loadImageTag() string {
	// .env is optional, the tag falls back to a pinned default
	_ = godotenv.Load(".env")
	if tag := os.Getenv("POSTGRES_TAG"); tag != "" {
		return tag
	}
	return defaultPostgresTag
}

func (c *PGContainer) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("failed to initialize a docker pool: %w", err)
	}
	c.pool = pool

	const pgPort = "5432/tcp"
	container, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        loadImageTag(),
			Env: []string{
				"POSTGRES_USER=" + testUserName,
				"POSTGRES_PASSWORD=" + testUserPassword,
				"POSTGRES_DB=" + testDBName,
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.container = container

	c.dsn = fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		testUserName,
		testUserPassword,
		container.GetHostPort(pgPort),
		testDBName,
	)

	pool.MaxWait = 30 * time.Second
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(
			context.Background(), model.DefaultTimeout)
		defer cancel()

		conn, err := pgx.Connect(ctx, c.dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to the DB: %w", err)
		}
		return conn.Close(ctx)
	}); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	return nil
}

func (c *PGContainer) GetDSN() string {
	return c.dsn
}

func (c *PGContainer) Close() {
	if c.pool == nil || c.container == nil {
		return
	}
	if err := c.pool.Purge(c.container); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
