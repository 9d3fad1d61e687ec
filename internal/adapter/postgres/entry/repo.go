// Package entry implements the timeline entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

const table = "entries"

var columns = []string{
	"id", "schema", "title", "description", "date_on_timeline", "source", "extra_attributes",
}

// row is the scan target of an entries row.
type row struct {
	ID              uuid.UUID      `db:"id"`
	Schema          string         `db:"schema"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	DateOnTimeline  time.Time      `db:"date_on_timeline"`
	Source          string         `db:"source"`
	ExtraAttributes map[string]any `db:"extra_attributes"`
}

func (r row) toDomain() domain.Entry {
	attrs := domain.Attributes(r.ExtraAttributes)
	if attrs == nil {
		attrs = domain.Attributes{}
	}
	return domain.Entry{
		ID:              r.ID,
		Schema:          r.Schema,
		Title:           r.Title,
		Description:     r.Description,
		DateOnTimeline:  r.DateOnTimeline,
		Source:          r.Source,
		ExtraAttributes: attrs,
	}
}

func attrsParam(a domain.Attributes) map[string]any {
	if a == nil {
		return map[string]any{}
	}
	return a
}

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns entries matching f ordered by date_on_timeline, then id.
func (r *Repo) List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("date_on_timeline ASC", "id ASC")

	if !f.From.IsZero() {
		q = q.Where(sq.GtOrEq{"date_on_timeline": f.From})
	}
	if !f.Until.IsZero() {
		q = q.Where(sq.Lt{"date_on_timeline": f.Until})
	}
	if f.SchemaPrefix != "" {
		q = q.Where(sq.Like{"schema": escapeLike(f.SchemaPrefix) + "%"})
	}
	if f.Source != "" {
		q = q.Where(sq.Eq{"source": f.Source})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "entries", "list")
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entry query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", id.String())
	}

	e := rw.toDomain()
	return &e, nil
}

// Create inserts e and returns the stored entry. e.ID must be set.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.Schema, e.Title, e.Description, e.DateOnTimeline, e.Source, attrsParam(e.ExtraAttributes)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create entry query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", e.ID.String())
	}

	out := rw.toDomain()
	return &out, nil
}

// Update replaces every field of the stored entry with e's.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("schema", e.Schema).
		Set("title", e.Title).
		Set("description", e.Description).
		Set("date_on_timeline", e.DateOnTimeline).
		Set("source", e.Source).
		Set("extra_attributes", attrsParam(e.ExtraAttributes)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update entry query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", e.ID.String())
	}

	out := rw.toDomain()
	return &out, nil
}

// Delete removes an entry. Returns ErrNotFound when no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete entry query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySource removes every entry tagged with source and returns how
// many were deleted.
func (r *Repo) DeleteBySource(ctx context.Context, source string) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"source": source}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete entries by source query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "entries", source)
	}
	return tag.RowsAffected(), nil
}

// CountBySources returns the number of entries per source tag. Tags without
// entries are absent from the result.
func (r *Repo) CountBySources(ctx context.Context, sources []string) (map[string]int, error) {
	out := make(map[string]int, len(sources))
	if len(sources) == 0 {
		return out, nil
	}

	query, args, err := postgres.Builder().
		Select("source", "count(*) AS n").
		From(table).
		Where(sq.Eq{"source": sources}).
		GroupBy("source").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count entries query: %w", err)
	}

	var rows []struct {
		Source string `db:"source"`
		N      int    `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "entries", "count")
	}

	for _, rw := range rows {
		out[rw.Source] = rw.N
	}
	return out, nil
}

// BulkCreate inserts entries with one batched round trip. Entries whose id
// already exists are skipped. Returns the number of inserted rows.
func (r *Repo) BulkCreate(ctx context.Context, entries []domain.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO entries (id, schema, title, description, date_on_timeline, source, extra_attributes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			e.ID, e.Schema, e.Title, e.Description, e.DateOnTimeline, e.Source, attrsParam(e.ExtraAttributes),
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "entries", "bulk create")
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// DeleteOrphaned removes entries whose source tag names one of the given
// types but matches no stored archive or source. Returns how many were
// deleted.
func (r *Repo) DeleteOrphaned(ctx context.Context, types []string) (int64, error) {
	if len(types) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(table + " e").
		Where(sq.Eq{"split_part(e.source, '/', 1)": types}).
		Where("NOT EXISTS (SELECT 1 FROM archives a WHERE a.type || '/' || a.key = e.source)").
		Where("NOT EXISTS (SELECT 1 FROM sources s WHERE s.type || '/' || s.key = e.source)").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete orphaned entries query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "entries", "orphaned")
	}
	return tag.RowsAffected(), nil
}

// Iterate calls fn with pages of at most pageSize entries in timeline
// order until every entry was visited or fn returns an error.
func (r *Repo) Iterate(ctx context.Context, pageSize uint64, fn func([]domain.Entry) error) error {
	var (
		afterDate time.Time
		afterID   uuid.UUID
		first     = true
	)
	for {
		q := postgres.Builder().
			Select(columns...).
			From(table).
			OrderBy("date_on_timeline ASC", "id ASC").
			Limit(pageSize)
		if !first {
			q = q.Where("(date_on_timeline, id) > (?, ?)", afterDate, afterID)
		}

		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build iterate entries query: %w", err)
		}

		var rows []row
		if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
			return postgres.MapError(err, "entries", "iterate")
		}
		if len(rows) == 0 {
			return nil
		}

		page := make([]domain.Entry, 0, len(rows))
		for _, rw := range rows {
			page = append(page, rw.toDomain())
		}
		if err := fn(page); err != nil {
			return err
		}
		if uint64(len(rows)) < pageSize {
			return nil
		}

		last := rows[len(rows)-1]
		afterDate, afterID, first = last.DateOnTimeline, last.ID, false
	}
}

// escapeLike escapes LIKE wildcards so prefix matches are literal.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
