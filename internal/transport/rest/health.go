package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

// Health statuses, best to worst.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name     string
	pinger   pinger
	critical bool
}

// HealthHandler serves the probe endpoints. The database is critical;
// optional components only degrade the reported status.
type HealthHandler struct {
	components []component
	version    string
	now        func() time.Time
}

// HealthOption adds an optional component.
type HealthOption func(*HealthHandler)

// WithCache reports the Redis page cache under "redis".
func WithCache(cache pinger) HealthOption {
	return func(h *HealthHandler) {
		h.components = append(h.components, component{name: "redis", pinger: cache})
	}
}

func NewHealthHandler(db pinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		components: []component{{name: "database", pinger: db, critical: true}},
		version:    version,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the body of all probe endpoints.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready answers 503 while a critical component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context(), true)
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every component with its ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, comps := h.check(r.Context(), false)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: comps,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) check(ctx context.Context, criticalOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	overall := statusOK
	comps := make(map[string]CompStatus, len(h.components))

	for _, c := range h.components {
		if criticalOnly && !c.critical {
			continue
		}

		start := time.Now()
		if err := c.pinger.Ping(ctx); err != nil {
			comps[c.name] = CompStatus{Status: statusDown}
			switch {
			case c.critical:
				overall = statusDown
			case overall == statusOK:
				overall = statusDegraded
			}
			continue
		}
		comps[c.name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}

	return overall, comps
}

func httpStatus(status string) int {
	if status == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
