package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/star-hub/starid/internal/api/handlers"
	"github.com/star-hub/starid/internal/config"
	"github.com/star-hub/starid/internal/dbmanager"
	"github.com/star-hub/starid/internal/model"
	"github.com/star-hub/starid/internal/repo"
	"github.com/star-hub/starid/internal/router"
	"github.com/star-hub/starid/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

type handler struct {
	*handlers.AuthHandler
	*handlers.ServiceHandler
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.NewBuilder(slog.Default()).
		FromEnv().
		FromFlags().
		GetConfig()

	slogger := logger.New(logger.ParseLevel(cfg.LogLevel))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := dbmanager.New(cfg.DatabaseURI, slogger)
	defer db.Close()
	db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx)
	if err := db.Error(); err != nil {
		return err
	}
	pool, err := db.GetPool(ctx)
	if err != nil {
		return err
	}

	users := repo.NewUserRepository(pool, slogger)
	h := handler{
		AuthHandler: handlers.NewAuthHandler(
			users, cfg.SecretKey, cfg.StrictValidation),
		ServiceHandler: handlers.NewServiceHandler(pool),
	}

	r := router.New(cfg, slogger)
	r.SetRouter(h)

	srv := &http.Server{
		Addr:         cfg.RunAddr,
		Handler:      r.GetRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slogger.LogAttrs(ctx,
			slog.LevelInfo,
			"StarID Server running",
			slog.String("address", cfg.RunAddr),
		)
		if err := srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slogger.LogAttrs(shutdownCtx,
			slog.LevelError,
			"failed to shutdown the server gracefully",
			slog.Any(model.KeyLoggerError, err),
		)
		return err
	}

	slogger.LogAttrs(context.Background(),
		slog.LevelInfo,
		"server stopped",
	)
	return nil
}
