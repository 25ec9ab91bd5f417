package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uhdiapa/service-guide/internal/provider/mapsession"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	service string
	session *mapsession.Session
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service string, session *mapsession.Session) *HealthHandler {
	return &HealthHandler{service: service, session: session}
}

// RegisterRoutes registers the health routes directly on the engine.
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service})
}

// Readiness handles GET /readyz. The service is degraded but serving when
// the map session failed to load; readiness reports it so operators see it.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.session.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "degraded",
			"service": h.service,
			"routing": "unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service})
}
