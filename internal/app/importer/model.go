package importer

import (
	"time"

	"github.com/google/uuid"
)

// JSONEntry is one element of a JSON archive: an entry as the API
// serves it. The source is always replaced by the archive's tag.
type JSONEntry struct {
	ID              uuid.UUID      `json:"id"`
	Schema          string         `json:"schema"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DateOnTimeline  time.Time      `json:"date_on_timeline"`
	Source          string         `json:"source"`
	ExtraAttributes map[string]any `json:"extra_attributes"`
}
