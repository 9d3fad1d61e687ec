// Package source implements the data source repository using PostgreSQL.
package source

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

var columns = []string{"type", "key", "date_from", "date_until", "config"}

type row struct {
	Type      string         `db:"type"`
	Key       string         `db:"key"`
	DateFrom  *time.Time     `db:"date_from"`
	DateUntil *time.Time     `db:"date_until"`
	Config    map[string]any `db:"config"`
}

func (r row) toDomain() domain.Source {
	cfg := r.Config
	if cfg == nil {
		cfg = map[string]any{}
	}
	return domain.Source{
		Type:      domain.SourceType(r.Type),
		Key:       r.Key,
		DateFrom:  r.DateFrom,
		DateUntil: r.DateUntil,
		Config:    cfg,
	}
}

func configParam(c map[string]any) map[string]any {
	if c == nil {
		return map[string]any{}
	}
	return c
}

// Repo provides source persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new source repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns sources ordered by type and key. An empty typ lists every type.
func (r *Repo) List(ctx context.Context, typ domain.SourceType) ([]domain.Source, error) {
	q := postgres.Builder().Select(columns...).From("sources").OrderBy("type", "key")
	if typ != "" {
		q = q.Where(sq.Eq{"type": string(typ)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sources query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "sources", string(typ))
	}

	out := make([]domain.Source, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Get returns one source.
func (r *Repo) Get(ctx context.Context, typ domain.SourceType, key string) (*domain.Source, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("sources").
		Where(sq.Eq{"type": string(typ), "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get source query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "source", domain.SourceTag(string(typ), key))
	}

	s := rw.toDomain()
	return &s, nil
}

// Create inserts a source.
func (r *Repo) Create(ctx context.Context, s *domain.Source) (*domain.Source, error) {
	query, args, err := postgres.Builder().
		Insert("sources").
		Columns(columns...).
		Values(string(s.Type), s.Key, s.DateFrom, s.DateUntil, configParam(s.Config)).
		Suffix("RETURNING type, key, date_from, date_until, config").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create source query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "source", s.Tag())
	}

	out := rw.toDomain()
	return &out, nil
}

// Update replaces the date range and configuration of a source.
func (r *Repo) Update(ctx context.Context, s *domain.Source) (*domain.Source, error) {
	query, args, err := postgres.Builder().
		Update("sources").
		Set("date_from", s.DateFrom).
		Set("date_until", s.DateUntil).
		Set("config", configParam(s.Config)).
		Where(sq.Eq{"type": string(s.Type), "key": s.Key}).
		Suffix("RETURNING type, key, date_from, date_until, config").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update source query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "source", s.Tag())
	}

	out := rw.toDomain()
	return &out, nil
}

// Delete removes a source.
func (r *Repo) Delete(ctx context.Context, typ domain.SourceType, key string) error {
	query, args, err := postgres.Builder().
		Delete("sources").
		Where(sq.Eq{"type": string(typ), "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete source query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "source", domain.SourceTag(string(typ), key))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("source %s: %w", domain.SourceTag(string(typ), key), domain.ErrNotFound)
	}
	return nil
}
