// Package timeline implements the Timeline Service: day queries, entry
// writes and the composed day view.
package timeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/pkg/ctxutil"
)

type entryRepo interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.EntryEvent) error
}

// Service provides timeline operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	events  eventPublisher
	cfg     config.TimelineConfig
	now     func() time.Time
}

// NewService creates a new Timeline service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	events eventPublisher,
	cfg config.TimelineConfig,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Gap <= 0 {
		cfg.Gap = time.Hour
	}
	return &Service{
		log:     log.With("service", "timeline"),
		entries: entries,
		events:  events,
		cfg:     cfg,
		now:     time.Now,
	}
}

// location returns the zone calendar days are computed in for this request.
func (s *Service) location(ctx context.Context) *time.Location {
	return ctxutil.LocationFromCtx(ctx, s.cfg.Location)
}

// publish emits ev. A failed publish never fails the write that caused it.
func (s *Service) publish(ctx context.Context, typ domain.EntryEventType, id uuid.UUID, e *domain.Entry) {
	ev := domain.EntryEvent{Type: typ, EntryID: id, Entry: e, OccurredAt: s.now().UTC()}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.ErrorContext(ctx, "publish entry event",
			slog.String("event_type", string(typ)),
			slog.String("entry_id", id.String()),
			slog.String("error", err.Error()))
	}
}
