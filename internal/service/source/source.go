package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/pkg/ctxutil"
)

// List returns sources. An empty type lists every source.
func (s *Service) List(ctx context.Context, typ domain.SourceType) ([]domain.Source, error) {
	if typ != "" {
		if err := checkType(typ); err != nil {
			return nil, err
		}
	}

	sources, err := s.sources.List(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	if sources == nil {
		sources = []domain.Source{}
	}
	return sources, nil
}

// Get returns one source with the number of entries it produced.
func (s *Service) Get(ctx context.Context, typ domain.SourceType, key string) (*domain.Source, error) {
	if err := checkType(typ); err != nil {
		return nil, err
	}

	src, err := s.sources.Get(ctx, typ, key)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}

	counts, err := s.entries.CountBySources(ctx, []string{src.Tag()})
	if err != nil {
		return nil, fmt.Errorf("count source entries: %w", err)
	}
	src.EntryCount = counts[src.Tag()]

	return src, nil
}

// Create stores a new source.
func (s *Service) Create(ctx context.Context, src domain.Source) (*domain.Source, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if src.Config == nil {
		src.Config = map[string]any{}
	}

	created, err := s.sources.Create(ctx, &src)
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	s.log.InfoContext(ctx, "source created",
		slog.String("user_id", userID.String()),
		slog.String("source", created.Tag()),
	)
	return created, nil
}

// Update replaces the date range and configuration of a source.
func (s *Service) Update(ctx context.Context, src domain.Source) (*domain.Source, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if src.Config == nil {
		src.Config = map[string]any{}
	}

	updated, err := s.sources.Update(ctx, &src)
	if err != nil {
		return nil, fmt.Errorf("update source: %w", err)
	}

	s.log.InfoContext(ctx, "source updated",
		slog.String("user_id", userID.String()),
		slog.String("source", updated.Tag()),
	)
	return updated, nil
}

// Delete removes a source and every entry it produced.
func (s *Service) Delete(ctx context.Context, typ domain.SourceType, key string) error {
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
		if err := s.sources.Delete(txCtx, typ, key); err != nil {
			return fmt.Errorf("delete source: %w", err)
		}
		n, err := s.entries.DeleteBySource(txCtx, tag)
		if err != nil {
			return fmt.Errorf("delete source entries: %w", err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "source deleted",
		slog.String("user_id", userID.String()),
		slog.String("source", tag),
		slog.Int64("entries_removed", removed),
	)
	return nil
}
