package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/uhdiapa/service-guide/internal/location"
)

// LocationHandler streams continuous position updates to the map view.
type LocationHandler struct {
	service *location.Service
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(service *location.Service) *LocationHandler {
	return &LocationHandler{service: service}
}

// RegisterRoutes registers the location routes on the given router group.
func (h *LocationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/location/stream", h.Stream)
}

// Stream handles GET /api/v1/location/stream as server-sent events. The
// watch is bound to the request context, so a departing client tears the
// subscription down instead of leaking it.
func (h *LocationHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")

	updates := h.service.Watch(c.Request.Context())
	c.Stream(func(w io.Writer) bool {
		pt, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("position", pt)
		return true
	})
}
