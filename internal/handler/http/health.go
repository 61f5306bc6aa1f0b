package http

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/ech0p1ng/articles-rest/internal/cache"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
)

// HealthResponse is the JSON body of the health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus reports the outcome of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler serves /healthz. It verifies database connectivity with pool
// statistics and probes the cache. A failing database makes the service
// unhealthy (503); a failing cache only degrades it, since reads fall back to
// storage.
type HealthHandler struct {
	DB      *sql.DB
	Cache   cache.Store
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	status := "healthy"
	code := http.StatusOK

	dbCheck := h.checkDatabase(ctx)
	checks["database"] = dbCheck
	if dbCheck.Status == "unhealthy" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	if h.Cache != nil {
		cacheCheck := h.checkCache(ctx)
		checks["cache"] = cacheCheck
		if cacheCheck.Status == "unhealthy" && status == "healthy" {
			status = "degraded"
		}
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: respond.SanitizeError(err),
		}
	}

	stats := h.DB.Stats()
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		},
	}
}

func (h *HealthHandler) checkCache(ctx context.Context) CheckStatus {
	// A miss on the probe key is the expected healthy answer.
	_, err := h.Cache.Get(ctx, "healthz:probe")
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return CheckStatus{
			Status:  "unhealthy",
			Message: respond.SanitizeError(err),
		}
	}
	return CheckStatus{Status: "healthy"}
}

// ReadyHandler serves /readyz: 200 once the database answers a ping.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil || h.DB.PingContext(ctx) != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler serves /livez: 200 whenever the process accepts requests.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
