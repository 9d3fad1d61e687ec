package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

// pinger is anything the health endpoints can probe.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthCheck struct {
	name     string
	target   pinger
	required bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	checks   []healthCheck
	version  string
	timezone string
}

// NewHealthHandler creates a HealthHandler whose readiness depends on db.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		checks:  []healthCheck{{name: "database", target: db, required: true}},
		version: version,
	}
}

// WithCache adds the day-query cache to /health. The cache is optional, so
// it degrades the reported status without failing readiness.
func (h *HealthHandler) WithCache(cache pinger) *HealthHandler {
	h.checks = append(h.checks, healthCheck{name: "cache", target: cache})
	return h
}

// WithTimezone reports the zone days are computed in when a request names
// none.
func (h *HealthHandler) WithTimezone(loc *time.Location) *HealthHandler {
	if loc != nil {
		h.timezone = loc.String()
	}
	return h
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Timezone   string                `json:"timezone,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when every required component answers,
// 503 otherwise. Optional components are not probed.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, status := h.probe(r.Context(), true)
	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Components: components, Timestamp: time.Now()})
}

// Health probes every component and reports latency, version and the
// default time zone. A down optional component reports "degraded" with 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, status := h.probe(r.Context(), false)
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Timezone:   h.timezone,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings the components concurrently and folds their results into an
// overall status: down if a required one failed, degraded if only optional
// ones did.
func (h *HealthHandler) probe(ctx context.Context, requiredOnly bool) (map[string]CompStatus, string) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		components = make(map[string]CompStatus, len(h.checks))
		status     = "ok"
	)
	for _, c := range h.checks {
		if requiredOnly && !c.required {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			err := c.target.Ping(ctx)
			cs := CompStatus{Status: "ok", Latency: time.Since(start).String()}
			if err != nil {
				cs = CompStatus{Status: "down", Error: err.Error()}
			}

			mu.Lock()
			defer mu.Unlock()
			components[c.name] = cs
			switch {
			case err == nil:
			case c.required:
				status = "down"
			case status == "ok":
				status = "degraded"
			}
		}()
	}
	wg.Wait()

	return components, status
}
