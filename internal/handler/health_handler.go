package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-service/pkg/database"
	"venue-service/pkg/redis"
)

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db      *database.PostgresDB
	cache   *redis.Client
	version string
}

// NewHealthHandler creates a new HealthHandler. The cache is optional.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready handles GET /ready. The database is required; the cache only
// degrades the report because reads fall back to the database.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	components := gin.H{}
	status := http.StatusOK

	if err := h.db.HealthCheck(ctx); err != nil {
		components["database"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		components["database"] = "ok"
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(ctx); err != nil {
			components["redis"] = err.Error()
		} else {
			components["redis"] = "ok"
		}
	}

	body := gin.H{"components": components}
	if status == http.StatusOK {
		body["status"] = "ready"
	} else {
		body["status"] = "unavailable"
	}
	c.JSON(status, body)
}
