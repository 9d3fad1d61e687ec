package timeline

import (
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	core "github.com/heartmarshall/lifelog-timeline/internal/timeline"
)

// MaxGap bounds the grouping gap a caller may request.
const MaxGap = 24 * time.Hour

// GetEntriesInput selects entries either by calendar day or by time range.
type GetEntriesInput struct {
	// Date is a calendar day (YYYY-MM-DD) in the caller's time zone.
	Date         string
	From         time.Time
	Until        time.Time
	SchemaPrefix string
	Source       string
}

// Validate checks all fields and collects all errors.
func (i GetEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Date != "" {
		if !i.From.IsZero() || !i.Until.IsZero() {
			errs = append(errs, domain.FieldError{Field: "date", Message: "cannot be combined with a time range"})
		} else if _, err := time.Parse(time.DateOnly, i.Date); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	} else if i.From.IsZero() && i.Until.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "date or time range required"})
	}
	if !i.From.IsZero() && !i.Until.IsZero() && !i.From.Before(i.Until) {
		errs = append(errs, domain.FieldError{Field: "date_on_timeline__lt", Message: "must be after date_on_timeline__gte"})
	}
	if len(i.SchemaPrefix) > domain.MaxSchemaLength {
		errs = append(errs, domain.FieldError{Field: "schema__startswith", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DayInput selects a day and how to present it.
type DayInput struct {
	Date    string
	Filters []string
	// Gap is the grouping threshold. Zero means unset and uses the
	// configured default; transports must not map an explicit 0 onto it.
	Gap time.Duration
}

// Validate checks all fields and collects all errors.
func (i DayInput) Validate() error {
	var errs []domain.FieldError

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if _, err := time.Parse(time.DateOnly, i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if err := core.ValidateFilters(i.Filters); err != nil {
		errs = append(errs, domain.FieldError{Field: "filters", Message: err.Error()})
	}
	if i.Gap < 0 || i.Gap > MaxGap {
		errs = append(errs, domain.FieldError{Field: "gap", Message: "must be between 0 and 24h"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DayBounds returns [midnight, next midnight) of date in loc. The next
// midnight is computed by calendar so days with a DST shift are 23 or 25
// hours long.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, d.AddDate(0, 0, 1), nil
}
