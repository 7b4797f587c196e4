package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/start94/-Code-of-Babel/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.Classifier
	redis      *redis.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifier service.Classifier, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		classifier: classifier,
		redis:      redis,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Root handles GET /. The process refuses to start without a loaded
// model, so reachability alone means the service is serving.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Code of Babel API is active."})
}

// Health handles GET /health. The cache is optional, so a failing redis
// degrades the component map without turning the service unhealthy.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := map[string]string{
		"model": fmt.Sprintf("ok (%d languages)", len(h.classifier.Languages())),
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["cache"] = "error: " + err.Error()
		} else {
			components["cache"] = "ok"
		}
	} else {
		components["cache"] = "not configured"
	}

	c.JSON(http.StatusOK, HealthStatus{
		Status:     "healthy",
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
