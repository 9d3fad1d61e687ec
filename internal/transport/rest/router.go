package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Timeline *TimelineHandler
	Archive  *ArchiveHandler
	Source   *SourceHandler
	OAuth    *OAuthHandler
}

// NewRouter registers every route. Probes are served as-is; /api/ routes
// go through api, the shared middleware chain. Write routes are wrapped
// in requireAuth.
func NewRouter(h Handlers, api, requireAuth func(http.Handler) http.Handler) http.Handler {
	apiMux := http.NewServeMux()
	write := func(f http.HandlerFunc) http.Handler { return requireAuth(f) }

	apiMux.HandleFunc("GET /api/timeline/entries/{$}", h.Timeline.ListEntries)
	apiMux.Handle("POST /api/timeline/entries/{$}", write(h.Timeline.CreateEntry))
	apiMux.HandleFunc("GET /api/timeline/entries/{id}/{$}", h.Timeline.GetEntry)
	apiMux.Handle("PUT /api/timeline/entries/{id}/{$}", write(h.Timeline.UpdateEntry))
	apiMux.Handle("DELETE /api/timeline/entries/{id}/{$}", write(h.Timeline.DeleteEntry))
	apiMux.HandleFunc("GET /api/timeline/day/{$}", h.Timeline.Day)
	apiMux.HandleFunc("GET /api/timeline/filters/{$}", h.Timeline.Filters)

	apiMux.HandleFunc("GET /api/archive/{$}", h.Archive.Endpoints)
	apiMux.Handle("DELETE /api/archive/archivefile/{id}/{$}", write(h.Archive.DeleteFile))
	apiMux.HandleFunc("GET /api/archive/{type}/{$}", h.Archive.List)
	apiMux.Handle("POST /api/archive/{type}/{$}", write(h.Archive.Create))
	apiMux.HandleFunc("GET /api/archive/{type}/{key}/{$}", h.Archive.Get)
	apiMux.Handle("PUT /api/archive/{type}/{key}/{$}", write(h.Archive.Update))
	apiMux.Handle("DELETE /api/archive/{type}/{key}/{$}", write(h.Archive.Delete))
	apiMux.Handle("POST /api/archive/{type}/{key}/files/{$}", write(h.Archive.AddFile))

	apiMux.HandleFunc("GET /api/source/{$}", h.Source.Endpoints)
	apiMux.HandleFunc("GET /api/source/{type}/{$}", h.Source.List)
	apiMux.Handle("POST /api/source/{type}/{$}", write(h.Source.Create))
	apiMux.HandleFunc("GET /api/source/{type}/{key}/{$}", h.Source.Get)
	apiMux.Handle("PUT /api/source/{type}/{key}/{$}", write(h.Source.Update))
	apiMux.Handle("DELETE /api/source/{type}/{key}/{$}", write(h.Source.Delete))

	apiMux.HandleFunc("POST /api/oauth/authorize/{$}", h.OAuth.Authorize)
	apiMux.HandleFunc("POST /api/oauth/token/{$}", h.OAuth.Token)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/api/", api(apiMux))

	return mux
}
