package timeline

import (
	"context"
	"fmt"

	core "github.com/heartmarshall/lifelog-timeline/internal/timeline"
)

// DayResult is the composed view of one calendar day.
type DayResult struct {
	Date           string   `json:"date"`
	Timezone       string   `json:"timezone"`
	EnabledFilters []string `json:"enabled_filters"`
	core.Day
}

// Day fetches a day's entries and runs them through classification,
// filtering and grouping.
func (s *Service) Day(ctx context.Context, input DayInput) (*DayResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	loc := s.location(ctx)
	entries, err := s.GetEntries(ctx, GetEntriesInput{Date: input.Date})
	if err != nil {
		return nil, err
	}

	gap := input.Gap
	if gap == 0 {
		gap = s.cfg.Gap
	}
	day, err := core.BuildDay(entries, core.DayOptions{EnabledFilters: input.Filters, Gap: gap})
	if err != nil {
		return nil, fmt.Errorf("timeline.Day: %w", err)
	}

	filters := input.Filters
	if filters == nil {
		filters = []string{}
	}
	return &DayResult{Date: input.Date, Timezone: loc.String(), EnabledFilters: filters, Day: day}, nil
}
