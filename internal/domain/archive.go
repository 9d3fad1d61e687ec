package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,80}$`)

// SourceTag is the value stamped into Entry.Source for entries imported by
// an archive or a source. Deleting the archive or source deletes the
// entries carrying its tag.
func SourceTag(typ, key string) string {
	return typ + "/" + key
}

// Archive is an import job definition: a set of exported files of one type
// turned into entries.
type Archive struct {
	Type          ArchiveType   `json:"type"`
	Key           string        `json:"key"`
	Description   string        `json:"description"`
	DateFrom      *time.Time    `json:"date_from"`
	DateUntil     *time.Time    `json:"date_until"`
	DateProcessed *time.Time    `json:"date_processed"`
	Files         []ArchiveFile `json:"archive_files"`
	EntryCount    int           `json:"entry_count"`
}

// Tag returns the entry source tag of the archive.
func (a *Archive) Tag() string {
	return SourceTag(string(a.Type), a.Key)
}

// Validate checks type, key and date range.
func (a *Archive) Validate() error {
	var errs []FieldError
	if !a.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "unknown archive type"})
	}
	errs = append(errs, validateKeyAndRange(a.Key, a.DateFrom, a.DateUntil)...)
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ArchiveFile is a file attached to an archive.
type ArchiveFile struct {
	ID          uuid.UUID   `json:"id"`
	ArchiveType ArchiveType `json:"archive_type"`
	ArchiveKey  string      `json:"archive_key"`
	URL         string      `json:"url"`
	Size        int64       `json:"size"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ArchiveRef identifies an archive.
type ArchiveRef struct {
	Type ArchiveType
	Key  string
}

// Source is a live data source polled for new entries.
type Source struct {
	Type       SourceType     `json:"type"`
	Key        string         `json:"key"`
	DateFrom   *time.Time     `json:"date_from"`
	DateUntil  *time.Time     `json:"date_until"`
	Config     map[string]any `json:"config"`
	EntryCount int            `json:"entry_count"`
}

// Tag returns the entry source tag of the source.
func (s *Source) Tag() string {
	return SourceTag(string(s.Type), s.Key)
}

// Validate checks type, key and date range.
func (s *Source) Validate() error {
	var errs []FieldError
	if !s.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "unknown source type"})
	}
	errs = append(errs, validateKeyAndRange(s.Key, s.DateFrom, s.DateUntil)...)
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func validateKeyAndRange(key string, from, until *time.Time) []FieldError {
	var errs []FieldError
	if !keyPattern.MatchString(key) {
		errs = append(errs, FieldError{Field: "key", Message: "must be 1-80 letters, digits, dashes or underscores"})
	}
	if from != nil && until != nil && !from.Before(*until) {
		errs = append(errs, FieldError{Field: "date_until", Message: "must be after date_from"})
	}
	return errs
}
