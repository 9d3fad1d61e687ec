package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/pkg/ctxutil"
)

// SaveEntry creates e when it has no id and replaces the stored entry
// otherwise. It returns the stored representation.
func (s *Service) SaveEntry(ctx context.Context, e domain.Entry) (*domain.Entry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e.Schema = strings.TrimSpace(e.Schema)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.ExtraAttributes == nil {
		e.ExtraAttributes = domain.Attributes{}
	}

	var (
		saved *domain.Entry
		event domain.EntryEventType
		err   error
	)
	if e.IsNew() {
		e.ID = uuid.New()
		saved, err = s.entries.Create(ctx, &e)
		event = domain.EntryCreated
	} else {
		saved, err = s.entries.Update(ctx, &e)
		event = domain.EntryUpdated
	}
	if err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry saved",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", saved.ID.String()),
		slog.String("schema", saved.Schema),
		slog.String("event", string(event)),
	)
	s.publish(ctx, event, saved.ID, saved)

	return saved, nil
}
