package archive

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/pkg/ctxutil"
)

// List returns archives without files. An empty type lists every archive.
func (s *Service) List(ctx context.Context, typ domain.ArchiveType) ([]domain.Archive, error) {
	if typ != "" {
		if err := checkType(typ); err != nil {
			return nil, err
		}
	}

	archives, err := s.archives.List(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	if archives == nil {
		archives = []domain.Archive{}
	}
	return archives, nil
}

// Get returns one archive with its files and the number of entries it produced.
func (s *Service) Get(ctx context.Context, typ domain.ArchiveType, key string) (*domain.Archive, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}

	a, err := s.archives.Get(ctx, typ, key)
	if err != nil {
		return nil, fmt.Errorf("get archive: %w", err)
	}

	files, err := s.archives.FilesByArchives(ctx, []domain.ArchiveRef{{Type: typ, Key: key}})
	if err != nil {
		return nil, fmt.Errorf("get archive files: %w", err)
	}
	a.Files = files

	counts, err := s.entries.CountBySources(ctx, []string{a.Tag()})
	if err != nil {
		return nil, fmt.Errorf("count archive entries: %w", err)
	}
	a.EntryCount = counts[a.Tag()]

	return a, nil
}

// Create stores a new archive definition.
func (s *Service) Create(ctx context.Context, a domain.Archive) (*domain.Archive, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a.Description = strings.TrimSpace(a.Description)
	if err := a.Validate(); err != nil {
		return nil, err
	}

	created, err := s.archives.Create(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	created.Files = []domain.ArchiveFile{}

	s.log.InfoContext(ctx, "archive created",
		slog.String("user_id", userID.String()),
		slog.String("archive", created.Tag()),
	)
	return created, nil
}

// Update replaces the description and date range of an archive.
func (s *Service) Update(ctx context.Context, a domain.Archive) (*domain.Archive, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a.Description = strings.TrimSpace(a.Description)
	if err := a.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.archives.Update(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("update archive: %w", err)
	}

	s.log.InfoContext(ctx, "archive updated",
		slog.String("user_id", userID.String()),
		slog.String("archive", updated.Tag()),
	)
	return updated, nil
}

// Delete removes an archive, its files and every entry it produced.
func (s *Service) Delete(ctx context.Context, typ domain.ArchiveType, key string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := checkType(typ); err != nil {
		return err
	}

	tag := domain.SourceTag(string(typ), key)
	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.archives.Delete(txCtx, typ, key); err != nil {
			return fmt.Errorf("delete archive: %w", err)
		}
		n, err := s.entries.DeleteBySource(txCtx, tag)
		if err != nil {
			return fmt.Errorf("delete archive entries: %w", err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "archive deleted",
		slog.String("user_id", userID.String()),
		slog.String("archive", tag),
		slog.Int64("entries_removed", removed),
	)
	return nil
}

// AddFile attaches a file to an existing archive.
func (s *Service) AddFile(ctx context.Context, input AddFileInput) (*domain.ArchiveFile, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f, err := s.archives.AddFile(ctx, &domain.ArchiveFile{
		ID:          uuid.New(),
		ArchiveType: input.Type,
		ArchiveKey:  input.Key,
		URL:         strings.TrimSpace(input.URL),
		Size:        input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("add archive file: %w", err)
	}
	return f, nil
}

// DeleteFile removes one archive file.
func (s *Service) DeleteFile(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.archives.DeleteFile(ctx, id); err != nil {
		return fmt.Errorf("delete archive file: %w", err)
	}

	s.log.InfoContext(ctx, "archive file deleted",
		slog.String("user_id", userID.String()),
		slog.String("file_id", id.String()),
	)
	return nil
}
