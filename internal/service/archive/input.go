package archive

import (
	"strings"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

const maxURLLength = 2048

// AddFileInput attaches an uploaded file to an archive.
type AddFileInput struct {
	Type domain.ArchiveType
	Key  string
	URL  string
	Size int64
}

func (i AddFileInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown archive type"})
	}
	if i.Key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	url := strings.TrimSpace(i.URL)
	if url == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	} else if len(url) > maxURLLength {
		errs = append(errs, domain.FieldError{Field: "url", Message: "too long"})
	}
	if i.Size < 0 {
		errs = append(errs, domain.FieldError{Field: "size", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
