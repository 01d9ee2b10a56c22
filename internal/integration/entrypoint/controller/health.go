// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthChecker
	cache    HealthChecker // Optional
	now      func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// cache may be nil when progress caching is disabled.
func NewHealthController(database HealthChecker, cache HealthChecker) *HealthController {
	return &HealthController{
		database: database,
		cache:    cache,
		now:      time.Now,
	}
}

// Check handles GET /health requests.
// The API answers 503 when the database is unreachable; a missing cache only degrades.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Cache:     "disabled",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	if h.database == nil {
		response.Database = "disconnected"
	} else if err := h.database.HealthCheck(ctx); err != nil {
		slog.Warn("Database health check failed", "error", err)
		response.Database = "disconnected"
	}
	if response.Database != "connected" {
		response.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		response.Cache = "connected"
		if err := h.cache.HealthCheck(ctx); err != nil {
			slog.Warn("Cache health check failed", "error", err)
			response.Cache = "disconnected"
			if status == http.StatusOK {
				response.Status = "degraded"
			}
		}
	}

	c.JSON(status, response)
}
