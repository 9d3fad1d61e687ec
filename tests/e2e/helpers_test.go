//go:build e2e

package e2e_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"

	userrepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/user"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/client"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// ---------------------------------------------------------------------------
// testServer runs the complete fx graph against the shared PostgreSQL
// container and exposes its HTTP handler through httptest.
// ---------------------------------------------------------------------------

type testServer struct {
	URL  string
	Pool *pgxpool.Pool
	cfg  *config.Config
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 2 * time.Second,
			RateLimit:       1000,
			RateCleanup:     time.Minute,
		},
		Database: config.DatabaseConfig{
			DSN:             dsn,
			MaxConns:        5,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: time.Minute,
		},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-32-chars-long!!",
			JWTIssuer:       "lifelog-e2e",
			AccessTokenTTL:  15 * time.Minute,
			CodeTTL:         time.Minute,
			ClientID:        "lifelog-e2e",
			RedirectURIsRaw: "http://localhost/oauth-redirect",
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Timezone",
		},
		Kafka: config.KafkaConfig{Topic: "timeline.entries"},
		Timeline: config.TimelineConfig{
			Gap:              time.Hour,
			Timezone:         "UTC",
			MaxEntriesPerDay: 1000,
			Location:         time.UTC,
		},
	}
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := testhelper.DSN(t)
	pool := testhelper.SetupTestDB(t)
	cfg := testConfig(dsn)

	var handler http.Handler
	fxApp := fxtest.New(t, app.Options(cfg), fx.Populate(&handler))
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Pool: pool, cfg: cfg}
}

// anonymous returns a client without a token.
func (ts *testServer) anonymous(opts ...client.Option) *client.Client {
	return client.New(ts.URL, append([]client.Option{client.WithTimezone("UTC")}, opts...)...)
}

func (ts *testServer) credentials(username, password string) client.Credentials {
	return client.Credentials{
		Username:    username,
		Password:    password,
		ClientID:    ts.cfg.Auth.ClientID,
		RedirectURI: ts.cfg.Auth.RedirectURIs()[0],
	}
}

// createUser stores a user with a bcrypt-hashed random password and
// returns the credentials.
func (ts *testServer) createUser(t *testing.T) (string, string) {
	t.Helper()

	username := "e2e-" + gofakeit.Username() + "-" + gofakeit.LetterN(6)
	password := gofakeit.Password(true, true, true, false, false, 16)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = userrepo.New(ts.Pool).Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	return username, password
}

// login creates a user and returns a client carrying its access token.
func (ts *testServer) login(t *testing.T, opts ...client.Option) *client.Client {
	t.Helper()

	username, password := ts.createUser(t)
	c := ts.anonymous(opts...)
	_, err := c.Login(context.Background(), ts.credentials(username, password))
	require.NoError(t, err)
	return c
}
