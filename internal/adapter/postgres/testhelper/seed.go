package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueDay returns midnight UTC of a random day, so tests sharing the
// database do not see each other's entries in day queries.
func UniqueDay() time.Time {
	base := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, rand.IntN(200*365))
}

// UniqueKey returns a valid archive or source key.
func UniqueKey() string {
	return "key-" + uniqueSuffix()
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + uniqueSuffix(),
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderpl",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedEntry inserts e (assigning an id when it has none) and returns it.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, e domain.Entry) domain.Entry {
	t.Helper()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.ExtraAttributes == nil {
		e.ExtraAttributes = domain.Attributes{}
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (id, schema, title, description, date_on_timeline, source, extra_attributes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Schema, e.Title, e.Description, e.DateOnTimeline, e.Source, map[string]any(e.ExtraAttributes),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}

// SeedArchive inserts an archive of the given type with a unique key.
func SeedArchive(t *testing.T, pool *pgxpool.Pool, typ domain.ArchiveType) domain.Archive {
	t.Helper()

	a := domain.Archive{Type: typ, Key: UniqueKey(), Description: "seeded " + string(typ)}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO archives (type, key, description) VALUES ($1, $2, $3)`,
		string(a.Type), a.Key, a.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArchive insert: %v", err)
	}

	return a
}
