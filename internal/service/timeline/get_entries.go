package timeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// GetEntries returns the entries of a day or a time range in ascending
// timeline order. At most max_entries_per_day entries are returned.
func (s *Service) GetEntries(ctx context.Context, input GetEntriesInput) ([]domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.EntryFilter{
		From:         input.From,
		Until:        input.Until,
		SchemaPrefix: input.SchemaPrefix,
		Source:       input.Source,
		Limit:        s.cfg.MaxEntriesPerDay,
	}
	if input.Date != "" {
		from, until, err := DayBounds(input.Date, s.location(ctx))
		if err != nil {
			return nil, err
		}
		f.From, f.Until = from, until
	}

	entries, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

// GetEntry returns one entry.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}
