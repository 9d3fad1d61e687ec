package timeline

import (
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// RecapCategories are the filters counted in a day recap.
var RecapCategories = []string{"image", "video", "file", "reddit", "hackerNews", "twitter", "blog", "location"}

// DayRecap summarises a set of entries for the map and the recap widget.
type DayRecap struct {
	Counts             map[string]int   `json:"counts"`
	GeolocationEntries []domain.Entry   `json:"geolocation_entries"`
	LatestLocation     *domain.Location `json:"latest_location,omitempty"`
}

// Recap counts entries per recap category using the filter registry and
// collects the entries that carry a location. Images and videos are also
// counted as files. LatestLocation is the location of the last located
// entry in input order.
func Recap(entries []domain.Entry) DayRecap {
	filters := make([]Filter, 0, len(RecapCategories))
	counts := make(map[string]int, len(RecapCategories))
	for _, name := range RecapCategories {
		f, _ := LookupFilter(name)
		filters = append(filters, f)
		counts[name] = 0
	}

	r := DayRecap{Counts: counts, GeolocationEntries: []domain.Entry{}}
	for i := range entries {
		e := &entries[i]
		for _, f := range filters {
			if f.Match(e) {
				counts[f.Name]++
			}
		}
		if loc, ok := e.ExtraAttributes.Location(); ok {
			r.GeolocationEntries = append(r.GeolocationEntries, *e)
			r.LatestLocation = &loc
		}
	}
	return r
}
