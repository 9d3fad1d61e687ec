package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/internal/service/timeline"
	core "github.com/heartmarshall/lifelog-timeline/internal/timeline"
)

type timelineService interface {
	GetEntries(ctx context.Context, input timeline.GetEntriesInput) ([]domain.Entry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	SaveEntry(ctx context.Context, e domain.Entry) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	Day(ctx context.Context, input timeline.DayInput) (*timeline.DayResult, error)
}

// TimelineHandler serves entry and day-view endpoints.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

// entryRequest is the writable part of an entry.
type entryRequest struct {
	Schema          string            `json:"schema"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DateOnTimeline  time.Time         `json:"date_on_timeline"`
	Source          string            `json:"source"`
	ExtraAttributes domain.Attributes `json:"extra_attributes"`
}

func (req entryRequest) toDomain(id uuid.UUID) domain.Entry {
	return domain.Entry{
		ID:              id,
		Schema:          req.Schema,
		Title:           req.Title,
		Description:     req.Description,
		DateOnTimeline:  req.DateOnTimeline,
		Source:          req.Source,
		ExtraAttributes: req.ExtraAttributes,
	}
}

// ListEntries handles GET /api/timeline/entries/
// ?date=YYYY-MM-DD | date_on_timeline__gte=&date_on_timeline__lt= [&schema__startswith=][&source=]
func (h *TimelineHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := timeline.GetEntriesInput{
		Date:         q.Get("date"),
		SchemaPrefix: q.Get("schema__startswith"),
		Source:       q.Get("source"),
	}

	var errs []domain.FieldError
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"date_on_timeline__gte", &input.From},
		{"date_on_timeline__lt", &input.Until},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be an RFC 3339 timestamp"})
			continue
		}
		*p.dst = t
	}
	if len(errs) > 0 {
		handleError(r.Context(), h.log, w, domain.NewValidationErrors(errs))
		return
	}

	entries, err := h.svc.GetEntries(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetEntry handles GET /api/timeline/entries/{id}/
func (h *TimelineHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// CreateEntry handles POST /api/timeline/entries/
func (h *TimelineHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := h.svc.SaveEntry(r.Context(), req.toDomain(uuid.Nil))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// UpdateEntry handles PUT /api/timeline/entries/{id}/
func (h *TimelineHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req entryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := h.svc.SaveEntry(r.Context(), req.toDomain(id))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteEntry handles DELETE /api/timeline/entries/{id}/
func (h *TimelineHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Day handles GET /api/timeline/day/?date=YYYY-MM-DD[&filters=a,b][&gap=seconds]
//
// gap must be 1..86400 seconds when present; gap=0 is rejected rather than
// read as "use the default". Omit gap to use the configured threshold.
func (h *TimelineHandler) Day(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := timeline.DayInput{Date: q.Get("date")}

	if v := strings.TrimSpace(q.Get("filters")); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				input.Filters = append(input.Filters, name)
			}
		}
	}
	if v := q.Get("gap"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			handleError(r.Context(), h.log, w, domain.NewValidationError("gap", "must be a number of seconds"))
			return
		}
		if secs <= 0 || secs > int(timeline.MaxGap/time.Second) {
			handleError(r.Context(), h.log, w, domain.NewValidationError("gap", "must be between 1 and 86400 seconds"))
			return
		}
		input.Gap = time.Duration(secs) * time.Second
	}

	day, err := h.svc.Day(r.Context(), input)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// Filters handles GET /api/timeline/filters/
func (h *TimelineHandler) Filters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, core.Filters())
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "invalid " + name,
			Fields: map[string]string{name: "must be a UUID"},
		})
		return uuid.Nil, false
	}
	return id, true
}
