package domain

import "time"

// EntryFilter selects entries by time range and origin.
// Zero values leave the corresponding bound open.
type EntryFilter struct {
	From         time.Time
	Until        time.Time
	SchemaPrefix string
	Source       string
	Limit        uint64
}

// IsDay reports whether the filter selects exactly one calendar day in loc
// with no other criteria. Only such queries are cached.
func (f EntryFilter) IsDay(loc *time.Location) bool {
	if f.From.IsZero() || f.SchemaPrefix != "" || f.Source != "" {
		return false
	}
	start := f.From.In(loc)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return false
	}
	return f.Until.Equal(start.AddDate(0, 0, 1))
}
