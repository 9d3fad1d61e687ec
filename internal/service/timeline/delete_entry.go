package timeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/pkg/ctxutil"
)

// DeleteEntry removes an entry.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)
	s.publish(ctx, domain.EntryDeleted, id, nil)

	return nil
}
