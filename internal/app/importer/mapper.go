package importer

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// Map converts a validated JSONEntry into an entry owned by the archive
// with the given tag. Ids from the dump are dropped so re-importing the
// same dump under another archive never collides.
func Map(e JSONEntry, tag string) domain.Entry {
	attrs := domain.Attributes(e.ExtraAttributes)
	if attrs == nil {
		attrs = domain.Attributes{}
	}
	return domain.Entry{
		ID:              uuid.New(),
		Schema:          e.Schema,
		Title:           e.Title,
		Description:     e.Description,
		DateOnTimeline:  e.DateOnTimeline.UTC(),
		Source:          tag,
		ExtraAttributes: attrs,
	}
}
