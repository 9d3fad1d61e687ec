// Package seeder fills an empty database with a generated demo timeline.
package seeder

import (
	"context"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// SourceRepo is implemented by the postgres source repository.
type SourceRepo interface {
	Create(ctx context.Context, s *domain.Source) (*domain.Source, error)
}

// ArchiveRepo is implemented by the postgres archive repository.
type ArchiveRepo interface {
	Create(ctx context.Context, a *domain.Archive) (*domain.Archive, error)
}

// EntryBulkRepo is implemented by the postgres entry repository.
type EntryBulkRepo interface {
	BulkCreate(ctx context.Context, entries []domain.Entry) (int, error)
}
