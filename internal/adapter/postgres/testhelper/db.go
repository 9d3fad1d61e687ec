// Package testhelper starts a disposable PostgreSQL for repository and
// end-to-end tests and seeds timeline rows into it.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" for goose
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/migrations"
)

const (
	postgresImage  = "postgres:17-alpine"
	containerSetup = 2 * time.Minute
)

// shared is the one container every test in the process connects to.
var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// DSN returns the connection string of the migrated test database, starting
// it on first use. Tests calling it are skipped under -short.
func DSN(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: database test skipped in -short mode")
	}
	shared.once.Do(func() {
		shared.dsn, shared.err = bootDatabase()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: test database unavailable: %v", shared.err)
	}
	return shared.dsn
}

// SetupTestDB returns a pool configured the way the server configures its
// own, so sessions run in UTC. The pool closes with the test.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	poolCfg, err := postgres.PoolConfig(config.DatabaseConfig{DSN: DSN(t), MaxConns: 8, MinConns: 0})
	if err != nil {
		t.Fatalf("testhelper: pool config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func bootDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), containerSetup)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "lifelog",
				"POSTGRES_PASSWORD": "lifelog",
				"POSTGRES_DB":       "timeline",
			},
			// The entrypoint restarts the server once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", postgresImage, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://lifelog:lifelog@%s/timeline?sslmode=disable", endpoint)

	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

// migrate applies the embedded goose migrations. goose drives database/sql,
// hence the stdlib driver.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
