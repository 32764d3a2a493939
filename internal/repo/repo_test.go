package repo

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/star-hub/starid/internal/dbmanager"
	"github.com/star-hub/starid/internal/utils/pgcontainer"
)

const testDefaultTimeout = 5 * time.Second

var getDBManager func() *dbmanager.DBManager

func TestMain(m *testing.M) {
	code, err := runMain(m, slog.Default())
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M, log *slog.Logger) (int, error) {
	pg := pgcontainer.New(log)
	err := pg.RunContainer()
	defer pg.Close()
	if err != nil {
		return 1, fmt.Errorf("failed to run docker container: %w", err)
	}

	if err = initGetDBManager(pg.GetDSN(), log); err != nil {
		return 1, fmt.Errorf("failed to init test DB: %w", err)
	}

	db := getDBManager()
	defer db.Close()

	exitCode := m.Run()
	return exitCode, nil
}

func initGetDBManager(dsn string, log *slog.Logger) error {
	db := dbmanager.New(dsn, log)

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx)
	if err := db.Error(); err != nil {
		return fmt.Errorf("failed to prepare test DB using dsn %s: %w", dsn, err)
	}

	getDBManager = func() *dbmanager.DBManager {
		return db
	}
	return nil
}

func setupRepo(t *testing.T,
) (*UserRepository, context.Context, context.CancelFunc, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)

	pool, err := getDBManager().GetPool(ctx)
	if err != nil {
		t.Fatalf("failed to get DB pool: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE users;`); err != nil {
		t.Fatalf("failed to truncate users table: %v", err)
	}

	return NewUserRepository(pool, slog.Default()), ctx, cancel, pool
}
