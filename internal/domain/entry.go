package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxSchemaLength is the longest schema string the store accepts.
const MaxSchemaLength = 100

// Entry is one timeline record: a photo, a message, a post, a transaction.
// A zero ID marks an entry that has not been stored yet.
type Entry struct {
	ID              uuid.UUID  `json:"id,omitzero"`
	Schema          string     `json:"schema"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DateOnTimeline  time.Time  `json:"date_on_timeline"`
	Source          string     `json:"source"`
	ExtraAttributes Attributes `json:"extra_attributes"`
}

// IsNew reports whether the entry has not been assigned an id yet.
func (e *Entry) IsNew() bool {
	return e.ID == uuid.Nil
}

// Validate checks the fields every entry must carry.
func (e *Entry) Validate() error {
	var errs []FieldError

	switch {
	case e.Schema == "":
		errs = append(errs, FieldError{Field: "schema", Message: "required"})
	case len(e.Schema) > MaxSchemaLength:
		errs = append(errs, FieldError{Field: "schema", Message: "too long"})
	}
	if e.DateOnTimeline.IsZero() {
		errs = append(errs, FieldError{Field: "date_on_timeline", Message: "required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// EntryEventType names a change made to an entry.
type EntryEventType string

const (
	EntryCreated EntryEventType = "entry.created"
	EntryUpdated EntryEventType = "entry.updated"
	EntryDeleted EntryEventType = "entry.deleted"
)

// EntryEvent is published after an entry write commits.
type EntryEvent struct {
	Type       EntryEventType `json:"event_type"`
	EntryID    uuid.UUID      `json:"entry_id"`
	Entry      *Entry         `json:"entry,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
