package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uhdiapa/service-guide/internal/application"
	"github.com/uhdiapa/service-guide/internal/domain/route"
	"github.com/uhdiapa/service-guide/internal/location"
	"github.com/uhdiapa/service-guide/internal/response"
)

// defaultDestinationName is shown when the query carries no destName.
const defaultDestinationName = "목적지"

// DirectionsHandler handles HTTP requests for the directions view.
type DirectionsHandler struct {
	service *application.DirectionsService
}

// NewDirectionsHandler creates a new DirectionsHandler.
func NewDirectionsHandler(service *application.DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{service: service}
}

// RegisterRoutes registers the directions routes on the given router group.
func (h *DirectionsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/directions", h.GetDirections)
}

// GetDirections handles GET /api/v1/directions. Coordinates arrive as query
// strings and are NaN-guarded; a parameter that does not parse is treated as
// absent, exactly like the page it replaces.
func (h *DirectionsHandler) GetDirections(c *gin.Context) {
	mode, err := route.ParseTravelMode(c.Query("mode"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := application.RouteInput{
		Mode:            mode,
		DestinationName: c.DefaultQuery("destName", defaultDestinationName),
	}
	if pt, ok := location.ParsePoint(c.Query("currentLat"), c.Query("currentLng")); ok {
		input.Origin = &pt
	}
	if pt, ok := location.ParsePoint(c.Query("destLat"), c.Query("destLng")); ok {
		input.Destination = &pt
	}

	snapshot := h.service.Resolve(c.Request.Context(), input)
	response.Success(c, snapshot)
}
