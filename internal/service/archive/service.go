// Package archive manages archive import definitions and their files.
package archive

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

type archiveRepo interface {
	List(ctx context.Context, typ domain.ArchiveType) ([]domain.Archive, error)
	Get(ctx context.Context, typ domain.ArchiveType, key string) (*domain.Archive, error)
	Create(ctx context.Context, a *domain.Archive) (*domain.Archive, error)
	Update(ctx context.Context, a *domain.Archive) (*domain.Archive, error)
	Delete(ctx context.Context, typ domain.ArchiveType, key string) error
	FilesByArchives(ctx context.Context, refs []domain.ArchiveRef) ([]domain.ArchiveFile, error)
	AddFile(ctx context.Context, f *domain.ArchiveFile) (*domain.ArchiveFile, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
}

type entryRepo interface {
	DeleteBySource(ctx context.Context, source string) (int64, error)
	CountBySources(ctx context.Context, sources []string) (map[string]int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements archive management.
type Service struct {
	log      *slog.Logger
	archives archiveRepo
	entries  entryRepo
	tx       txManager
}

// NewService creates a new archive service.
func NewService(
	logger *slog.Logger,
	archives archiveRepo,
	entries entryRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "archive"),
		archives: archives,
		entries:  entries,
		tx:       tx,
	}
}

// Endpoints maps every archive type to its collection URL.
func (s *Service) Endpoints() map[string]string {
	out := make(map[string]string, len(domain.ArchiveTypes))
	for _, t := range domain.ArchiveTypes {
		out[string(t)] = "/api/archive/" + string(t) + "/"
	}
	return out
}

func checkType(typ domain.ArchiveType) error {
	if !typ.IsValid() {
		return domain.NewValidationError("type", "unknown archive type")
	}
	return nil
}
