// Package source manages live data sources.
package source

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

type sourceRepo interface {
	List(ctx context.Context, typ domain.SourceType) ([]domain.Source, error)
	Get(ctx context.Context, typ domain.SourceType, key string) (*domain.Source, error)
	Create(ctx context.Context, s *domain.Source) (*domain.Source, error)
	Update(ctx context.Context, s *domain.Source) (*domain.Source, error)
	Delete(ctx context.Context, typ domain.SourceType, key string) error
}

type entryRepo interface {
	DeleteBySource(ctx context.Context, source string) (int64, error)
	CountBySources(ctx context.Context, sources []string) (map[string]int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements source management.
type Service struct {
	log     *slog.Logger
	sources sourceRepo
	entries entryRepo
	tx      txManager
}

// NewService creates a new source service.
func NewService(
	logger *slog.Logger,
	sources sourceRepo,
	entries entryRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "source"),
		sources: sources,
		entries: entries,
		tx:      tx,
	}
}

// Endpoints maps every source type to its collection URL.
func (s *Service) Endpoints() map[string]string {
	out := make(map[string]string, len(domain.SourceTypes))
	for _, t := range domain.SourceTypes {
		out[string(t)] = "/api/source/" + string(t) + "/"
	}
	return out
}

func checkType(typ domain.SourceType) error {
	if !typ.IsValid() {
		return domain.NewValidationError("type", "unknown source type")
	}
	return nil
}
