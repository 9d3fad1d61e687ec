package timeline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// ErrUnknownFilter is returned when a filter name is not in the registry.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter is a named entry category the timeline can be narrowed to.
type Filter struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	DisplayNamePlural string `json:"display_name_plural"`
	IconClass         string `json:"icon_class"`

	match func(*domain.Entry) bool
}

// Match reports whether e belongs to the filter's category.
func (f Filter) Match(e *domain.Entry) bool {
	return e != nil && f.match(e)
}

func variantIs(v Variant) func(*domain.Entry) bool {
	return func(e *domain.Entry) bool { return Classify(e) == v }
}

func postOn(network string) func(*domain.Entry) bool {
	return func(e *domain.Entry) bool { return PostNetwork(e) == network }
}

var registry = []Filter{
	{"blog", "blog post", "blog posts", "fas fa-rss-square", postOn("blog")},
	{"browse", "page view", "page views", "fas fa-globe-americas", variantIs(VariantBrowsing)},
	{"file", "file", "files", "fas fa-file", func(e *domain.Entry) bool { return HasSchemaPrefix(e.Schema, "file") }},
	{"hackerNews", "Hacker News entry", "Hacker News entries", "fab fa-y-combinator", postOn("hackernews")},
	{"image", "image", "images", "fas fa-image", variantIs(VariantImage)},
	{"journal", "journal entry", "journal entries", "fas fa-pen-square", variantIs(VariantJournal)},
	{"location", "location ping", "location pings", "fas fa-map-marker-alt", HasGeolocation},
	{"message", "message", "messages", "fas fa-comments", variantIs(VariantMessage)},
	{"motion", "exercise session", "exercise sessions", "fas fa-running", variantIs(VariantMotion)},
	{"reddit", "reddit entry", "reddit entries", "fab fa-reddit", postOn("reddit")},
	{"transaction", "transaction", "transactions", "fas fa-piggy-bank", variantIs(VariantTransaction)},
	{"twitter", "tweet", "tweets", "fab fa-twitter", postOn("twitter")},
	{"video", "video", "videos", "fas fa-video", variantIs(VariantVideo)},
}

// Filters returns the registry in name order.
func Filters() []Filter {
	return slices.Clone(registry)
}

// LookupFilter returns the filter registered under name.
func LookupFilter(name string) (Filter, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}
	return Filter{}, false
}

// ValidateFilters returns ErrUnknownFilter for the first name that is not
// registered.
func ValidateFilters(names []string) error {
	for _, n := range names {
		if _, ok := LookupFilter(n); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownFilter, n)
		}
	}
	return nil
}

// HasGeolocation reports whether e carries both coordinates.
func HasGeolocation(e *domain.Entry) bool {
	if e == nil {
		return false
	}
	_, ok := e.ExtraAttributes.Location()
	return ok
}

// FilteredEntries returns the entries matching at least one enabled filter,
// in input order. No enabled filters returns entries unchanged.
func FilteredEntries(entries []domain.Entry, enabled []string) ([]domain.Entry, error) {
	if len(enabled) == 0 {
		return entries, nil
	}

	active := make([]Filter, 0, len(enabled))
	for _, n := range enabled {
		f, ok := LookupFilter(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, n)
		}
		active = append(active, f)
	}

	out := make([]domain.Entry, 0, len(entries))
	for i := range entries {
		for _, f := range active {
			if f.Match(&entries[i]) {
				out = append(out, entries[i])
				break
			}
		}
	}
	return out, nil
}

// FilterCounts returns how many entries each registered filter matches.
// Every filter appears, with zero when nothing matches.
func FilterCounts(entries []domain.Entry) map[string]int {
	counts := make(map[string]int, len(registry))
	for _, f := range registry {
		counts[f.Name] = 0
	}
	for i := range entries {
		for _, f := range registry {
			if f.Match(&entries[i]) {
				counts[f.Name]++
			}
		}
	}
	return counts
}
