package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/internal/service/archive"
	"github.com/heartmarshall/lifelog-timeline/internal/transport/dataloader"
)

type archiveService interface {
	Endpoints() map[string]string
	List(ctx context.Context, typ domain.ArchiveType) ([]domain.Archive, error)
	Get(ctx context.Context, typ domain.ArchiveType, key string) (*domain.Archive, error)
	Create(ctx context.Context, a domain.Archive) (*domain.Archive, error)
	Update(ctx context.Context, a domain.Archive) (*domain.Archive, error)
	Delete(ctx context.Context, typ domain.ArchiveType, key string) error
	AddFile(ctx context.Context, input archive.AddFileInput) (*domain.ArchiveFile, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
}

// ArchiveHandler serves archive settings endpoints.
type ArchiveHandler struct {
	svc archiveService
	log *slog.Logger
}

// NewArchiveHandler creates an ArchiveHandler.
func NewArchiveHandler(svc archiveService, logger *slog.Logger) *ArchiveHandler {
	return &ArchiveHandler{svc: svc, log: logger.With("handler", "archive")}
}

type archiveRequest struct {
	Key           string     `json:"key"`
	Description   string     `json:"description"`
	DateFrom      *time.Time `json:"date_from"`
	DateUntil     *time.Time `json:"date_until"`
	DateProcessed *time.Time `json:"date_processed"`
}

type archiveFileRequest struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Endpoints handles GET /api/archive/
func (h *ArchiveHandler) Endpoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Endpoints())
}

// List handles GET /api/archive/{type}/
func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	archives, err := h.svc.List(r.Context(), domain.ArchiveType(r.PathValue("type")))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	if err := dataloader.AttachArchiveDetails(r.Context(), archives); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, archives)
}

// Get handles GET /api/archive/{type}/{key}/
func (h *ArchiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), domain.ArchiveType(r.PathValue("type")), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Create handles POST /api/archive/{type}/
func (h *ArchiveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.Create(r.Context(), domain.Archive{
		Type:          domain.ArchiveType(r.PathValue("type")),
		Key:           req.Key,
		Description:   req.Description,
		DateFrom:      req.DateFrom,
		DateUntil:     req.DateUntil,
		DateProcessed: req.DateProcessed,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Update handles PUT /api/archive/{type}/{key}/. The key in the body, if
// any, is ignored.
func (h *ArchiveHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.Update(r.Context(), domain.Archive{
		Type:          domain.ArchiveType(r.PathValue("type")),
		Key:           r.PathValue("key"),
		Description:   req.Description,
		DateFrom:      req.DateFrom,
		DateUntil:     req.DateUntil,
		DateProcessed: req.DateProcessed,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /api/archive/{type}/{key}/
func (h *ArchiveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), domain.ArchiveType(r.PathValue("type")), r.PathValue("key"))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddFile handles POST /api/archive/{type}/{key}/files/
func (h *ArchiveHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	var req archiveFileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	f, err := h.svc.AddFile(r.Context(), archive.AddFileInput{
		Type: domain.ArchiveType(r.PathValue("type")),
		Key:  r.PathValue("key"),
		URL:  req.URL,
		Size: req.Size,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// DeleteFile handles DELETE /api/archive/archivefile/{id}/
func (h *ArchiveHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteFile(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
