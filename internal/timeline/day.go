package timeline

import (
	"fmt"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// DayOptions controls how a day is built.
type DayOptions struct {
	EnabledFilters []string
	Gap            time.Duration
}

// Day is everything the timeline renders for one day.
type Day struct {
	Groups       []Group        `json:"groups"`
	Threads      []Thread       `json:"threads"`
	Recap        DayRecap       `json:"recap"`
	FilterCounts map[string]int `json:"filter_counts"`
	Total        int            `json:"total"`
	Shown        int            `json:"shown"`
}

// BuildDay filters and groups the entries of a day. Entries no rule
// classifies are left out of the groups. Threads, recap and filter counts
// always describe the whole day, whatever filters are enabled.
func BuildDay(entries []domain.Entry, opts DayOptions) (Day, error) {
	filtered, err := FilteredEntries(entries, opts.EnabledFilters)
	if err != nil {
		return Day{}, fmt.Errorf("build day: %w", err)
	}

	shown := make([]domain.Entry, 0, len(filtered))
	for i := range filtered {
		if Classify(&filtered[i]) != VariantNone {
			shown = append(shown, filtered[i])
		}
	}

	groups := GroupByTime(shown, opts.Gap)
	if groups == nil {
		groups = []Group{}
	}
	threads := Threads(entries)
	if threads == nil {
		threads = []Thread{}
	}

	return Day{
		Groups:       groups,
		Threads:      threads,
		Recap:        Recap(entries),
		FilterCounts: FilterCounts(entries),
		Total:        len(entries),
		Shown:        len(shown),
	}, nil
}
