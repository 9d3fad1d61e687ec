// Package archive implements the archive and archive file repository using PostgreSQL.
package archive

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

var (
	archiveColumns = []string{"type", "key", "description", "date_from", "date_until", "date_processed"}
	fileColumns    = []string{"id", "archive_type", "archive_key", "url", "size", "created_at"}
)

type archiveRow struct {
	Type          string     `db:"type"`
	Key           string     `db:"key"`
	Description   string     `db:"description"`
	DateFrom      *time.Time `db:"date_from"`
	DateUntil     *time.Time `db:"date_until"`
	DateProcessed *time.Time `db:"date_processed"`
}

func (r archiveRow) toDomain() domain.Archive {
	return domain.Archive{
		Type:          domain.ArchiveType(r.Type),
		Key:           r.Key,
		Description:   r.Description,
		DateFrom:      r.DateFrom,
		DateUntil:     r.DateUntil,
		DateProcessed: r.DateProcessed,
	}
}

type fileRow struct {
	ID          uuid.UUID `db:"id"`
	ArchiveType string    `db:"archive_type"`
	ArchiveKey  string    `db:"archive_key"`
	URL         string    `db:"url"`
	Size        int64     `db:"size"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r fileRow) toDomain() domain.ArchiveFile {
	return domain.ArchiveFile{
		ID:          r.ID,
		ArchiveType: domain.ArchiveType(r.ArchiveType),
		ArchiveKey:  r.ArchiveKey,
		URL:         r.URL,
		Size:        r.Size,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides archive persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new archive repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Archives
// ---------------------------------------------------------------------------

// List returns archives ordered by type and key. An empty typ lists every type.
func (r *Repo) List(ctx context.Context, typ domain.ArchiveType) ([]domain.Archive, error) {
	q := postgres.Builder().Select(archiveColumns...).From("archives").OrderBy("type", "key")
	if typ != "" {
		q = q.Where(sq.Eq{"type": string(typ)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list archives query: %w", err)
	}

	var rows []archiveRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "archives", string(typ))
	}

	out := make([]domain.Archive, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Get returns one archive without its files.
func (r *Repo) Get(ctx context.Context, typ domain.ArchiveType, key string) (*domain.Archive, error) {
	query, args, err := postgres.Builder().
		Select(archiveColumns...).
		From("archives").
		Where(sq.Eq{"type": string(typ), "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get archive query: %w", err)
	}

	var rw archiveRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "archive", domain.SourceTag(string(typ), key))
	}

	a := rw.toDomain()
	return &a, nil
}

// Create inserts an archive.
func (r *Repo) Create(ctx context.Context, a *domain.Archive) (*domain.Archive, error) {
	query, args, err := postgres.Builder().
		Insert("archives").
		Columns(archiveColumns...).
		Values(string(a.Type), a.Key, a.Description, a.DateFrom, a.DateUntil, a.DateProcessed).
		Suffix("RETURNING type, key, description, date_from, date_until, date_processed").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create archive query: %w", err)
	}

	var rw archiveRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "archive", a.Tag())
	}

	out := rw.toDomain()
	return &out, nil
}

// Update replaces the description, date range and processing date of an archive.
func (r *Repo) Update(ctx context.Context, a *domain.Archive) (*domain.Archive, error) {
	query, args, err := postgres.Builder().
		Update("archives").
		Set("description", a.Description).
		Set("date_from", a.DateFrom).
		Set("date_until", a.DateUntil).
		Set("date_processed", a.DateProcessed).
		Where(sq.Eq{"type": string(a.Type), "key": a.Key}).
		Suffix("RETURNING type, key, description, date_from, date_until, date_processed").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update archive query: %w", err)
	}

	var rw archiveRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "archive", a.Tag())
	}

	out := rw.toDomain()
	return &out, nil
}

// Delete removes an archive and, by cascade, its files.
func (r *Repo) Delete(ctx context.Context, typ domain.ArchiveType, key string) error {
	query, args, err := postgres.Builder().
		Delete("archives").
		Where(sq.Eq{"type": string(typ), "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete archive query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "archive", domain.SourceTag(string(typ), key))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("archive %s: %w", domain.SourceTag(string(typ), key), domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Archive files
// ---------------------------------------------------------------------------

// FilesByArchives returns the files of every given archive ordered by
// creation time.
func (r *Repo) FilesByArchives(ctx context.Context, refs []domain.ArchiveRef) ([]domain.ArchiveFile, error) {
	if len(refs) == 0 {
		return []domain.ArchiveFile{}, nil
	}

	match := make(sq.Or, 0, len(refs))
	for _, ref := range refs {
		match = append(match, sq.Eq{"archive_type": string(ref.Type), "archive_key": ref.Key})
	}

	query, args, err := postgres.Builder().
		Select(fileColumns...).
		From("archive_files").
		Where(match).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list archive files query: %w", err)
	}

	var rows []fileRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "archive_files", "batch")
	}

	out := make([]domain.ArchiveFile, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// AddFile attaches a file to an archive.
func (r *Repo) AddFile(ctx context.Context, f *domain.ArchiveFile) (*domain.ArchiveFile, error) {
	query, args, err := postgres.Builder().
		Insert("archive_files").
		Columns("id", "archive_type", "archive_key", "url", "size").
		Values(f.ID, string(f.ArchiveType), f.ArchiveKey, f.URL, f.Size).
		Suffix("RETURNING id, archive_type, archive_key, url, size, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build add archive file query: %w", err)
	}

	var rw fileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "archive_file", f.ID.String())
	}

	out := rw.toDomain()
	return &out, nil
}

// DeleteFile removes one archive file.
func (r *Repo) DeleteFile(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("archive_files").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete archive file query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "archive_file", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("archive_file %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
