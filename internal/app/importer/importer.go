// Package importer turns uploaded archives into timeline entries.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

type archiveRepo interface {
	Get(ctx context.Context, typ domain.ArchiveType, key string) (*domain.Archive, error)
	Update(ctx context.Context, a *domain.Archive) (*domain.Archive, error)
	FilesByArchives(ctx context.Context, refs []domain.ArchiveRef) ([]domain.ArchiveFile, error)
}

type entryRepo interface {
	DeleteBySource(ctx context.Context, source string) (int64, error)
	BulkCreate(ctx context.Context, entries []domain.Entry) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds import statistics.
type Result struct {
	FilesProcessed   int
	Parsed           int
	Inserted         int
	Replaced         int64
	Errors           int
	AlreadyProcessed bool
}

// Importer processes archives of the types it has a reader for.
type Importer struct {
	log      *slog.Logger
	archives archiveRepo
	entries  entryRepo
	tx       txManager
	cfg      Config
	now      func() time.Time
}

// New creates an Importer.
func New(log *slog.Logger, archives archiveRepo, entries entryRepo, tx txManager, cfg Config) *Importer {
	return &Importer{
		log:      log.With("component", "importer"),
		archives: archives,
		entries:  entries,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Run imports the archive typ/key. When paths is empty the files registered
// on the archive are read. The archive's previous entries are replaced and
// its processing date is set, all in one transaction. An archive that was
// already processed is skipped unless Config.Force is set.
func (im *Importer) Run(ctx context.Context, typ domain.ArchiveType, key string, paths []string) (Result, error) {
	if typ != domain.ArchiveJSON {
		return Result{}, domain.NewValidationError("type", "no importer for archive type "+string(typ))
	}

	archive, err := im.archives.Get(ctx, typ, key)
	if err != nil {
		return Result{}, fmt.Errorf("get archive: %w", err)
	}
	log := im.log.With(slog.String("archive", archive.Tag()))

	if archive.DateProcessed != nil && !im.cfg.Force {
		log.Info("archive already processed, skipping", slog.Time("date_processed", *archive.DateProcessed))
		return Result{AlreadyProcessed: true}, nil
	}

	if len(paths) == 0 {
		paths, err = im.registeredPaths(ctx, archive)
		if err != nil {
			return Result{}, err
		}
	}

	var (
		result  Result
		entries []domain.Entry
	)
	for _, path := range paths {
		result.FilesProcessed++

		parsed, err := readJSONFile(path)
		if err != nil {
			log.Error("read archive file", slog.String("path", path), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		for i, je := range parsed {
			if err := Validate(je); err != nil {
				log.Error("invalid entry",
					slog.String("path", path),
					slog.Int("index", i),
					slog.String("error", err.Error()),
				)
				result.Errors++
				continue
			}
			entries = append(entries, Map(je, archive.Tag()))
		}
	}
	result.Parsed = len(entries)

	if im.cfg.DryRun {
		log.Info("dry run, nothing written", slog.Int("parsed", result.Parsed), slog.Int("errors", result.Errors))
		return result, nil
	}

	err = im.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := im.entries.DeleteBySource(txCtx, archive.Tag())
		if err != nil {
			return fmt.Errorf("delete previous entries: %w", err)
		}
		result.Replaced = n

		inserted, err := batchProcess(entries, im.cfg.BatchSize, func(batch []domain.Entry) (int, error) {
			return im.entries.BulkCreate(txCtx, batch)
		})
		result.Inserted = inserted
		if err != nil {
			return fmt.Errorf("insert entries: %w", err)
		}

		processed := im.now().UTC()
		archive.DateProcessed = &processed
		if _, err := im.archives.Update(txCtx, archive); err != nil {
			return fmt.Errorf("mark archive processed: %w", err)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	log.Info("import complete",
		slog.Int("files", result.FilesProcessed),
		slog.Int("inserted", result.Inserted),
		slog.Int64("replaced", result.Replaced),
		slog.Int("errors", result.Errors),
	)
	return result, nil
}

// registeredPaths resolves the archive's file URLs to local paths under
// Config.FileRoot.
func (im *Importer) registeredPaths(ctx context.Context, a *domain.Archive) ([]string, error) {
	files, err := im.archives.FilesByArchives(ctx, []domain.ArchiveRef{{Type: a.Type, Key: a.Key}})
	if err != nil {
		return nil, fmt.Errorf("list archive files: %w", err)
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("files", "archive has no files")
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		p := strings.TrimPrefix(f.URL, "file://")
		if !filepath.IsAbs(p) {
			p = filepath.Join(im.cfg.FileRoot, p)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func readJSONFile(path string) ([]JSONEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []JSONEntry
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return out, nil
}

// batchProcess splits items into chunks of batchSize and calls fn for each.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
