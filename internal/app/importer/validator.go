package importer

import (
	"fmt"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Validate checks that a JSONEntry can become a timeline entry.
func Validate(e JSONEntry) error {
	if e.Schema == "" {
		return fmt.Errorf("schema is empty")
	}
	if len(e.Schema) > domain.MaxSchemaLength {
		return fmt.Errorf("schema %q is longer than %d", e.Schema[:20]+"...", domain.MaxSchemaLength)
	}
	if e.DateOnTimeline.IsZero() {
		return fmt.Errorf("entry %q has no date_on_timeline", e.Schema)
	}
	return nil
}
