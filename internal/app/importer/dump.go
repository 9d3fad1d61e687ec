package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
)

// IterateFunc walks every stored entry page by page.
type IterateFunc func(ctx context.Context, pageSize uint64, fn func([]domain.Entry) error) error

// Dump writes every entry as one JSON array, in the shape Run reads back.
// It returns the number of entries written.
func Dump(ctx context.Context, iterate IterateFunc, pageSize uint64, w io.Writer) (int, error) {
	if _, err := io.WriteString(w, "["); err != nil {
		return 0, err
	}

	n := 0
	err := iterate(ctx, pageSize, func(page []domain.Entry) error {
		for _, e := range page {
			if n > 0 {
				if _, err := io.WriteString(w, ",\n"); err != nil {
					return err
				}
			}
			b, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("marshal entry %s: %w", e.ID, err)
			}
			if _, err := w.Write(b); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("dump entries: %w", err)
	}

	if _, err := io.WriteString(w, "]\n"); err != nil {
		return n, err
	}
	return n, nil
}
