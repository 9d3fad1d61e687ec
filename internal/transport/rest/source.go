package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/internal/transport/dataloader"
)

type sourceService interface {
	Endpoints() map[string]string
	List(ctx context.Context, typ domain.SourceType) ([]domain.Source, error)
	Get(ctx context.Context, typ domain.SourceType, key string) (*domain.Source, error)
	Create(ctx context.Context, s domain.Source) (*domain.Source, error)
	Update(ctx context.Context, s domain.Source) (*domain.Source, error)
	Delete(ctx context.Context, typ domain.SourceType, key string) error
}

// SourceHandler serves source settings endpoints.
type SourceHandler struct {
	svc sourceService
	log *slog.Logger
}

// NewSourceHandler creates a SourceHandler.
func NewSourceHandler(svc sourceService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{svc: svc, log: logger.With("handler", "source")}
}

type sourceRequest struct {
	Key       string         `json:"key"`
	DateFrom  *time.Time     `json:"date_from"`
	DateUntil *time.Time     `json:"date_until"`
	Config    map[string]any `json:"config"`
}

func (req sourceRequest) toDomain(typ, key string) domain.Source {
	return domain.Source{
		Type:      domain.SourceType(typ),
		Key:       key,
		DateFrom:  req.DateFrom,
		DateUntil: req.DateUntil,
		Config:    req.Config,
	}
}

// Endpoints handles GET /api/source/
func (h *SourceHandler) Endpoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Endpoints())
}

// List handles GET /api/source/{type}/
func (h *SourceHandler) List(w http.ResponseWriter, r *http.Request) {
	sources, err := h.svc.List(r.Context(), domain.SourceType(r.PathValue("type")))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	if err := dataloader.AttachSourceCounts(r.Context(), sources); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

// Get handles GET /api/source/{type}/{key}/
func (h *SourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context(), domain.SourceType(r.PathValue("type")), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Create handles POST /api/source/{type}/
func (h *SourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.Create(r.Context(), req.toDomain(r.PathValue("type"), req.Key))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// Update handles PUT /api/source/{type}/{key}/
func (h *SourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req sourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.Update(r.Context(), req.toDomain(r.PathValue("type"), r.PathValue("key")))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Delete handles DELETE /api/source/{type}/{key}/
func (h *SourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), domain.SourceType(r.PathValue("type")), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
