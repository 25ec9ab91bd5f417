package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uhdiapa/service-guide/internal/application"
	"github.com/uhdiapa/service-guide/internal/response"
)

// HospitalHandler handles HTTP requests for the hospital recommendation view.
type HospitalHandler struct {
	service *application.HospitalService
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(service *application.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

// RegisterRoutes registers the hospital routes on the given router group.
func (h *HospitalHandler) RegisterRoutes(r *gin.RouterGroup) {
	hospitals := r.Group("/api/v1/hospitals")
	{
		hospitals.GET("/recommend", h.Recommend)
		hospitals.GET("/:id/details", h.Detail)
	}
}

// Recommend handles GET /api/v1/hospitals/recommend.
func (h *HospitalHandler) Recommend(c *gin.Context) {
	result, err := h.service.Recommend(
		c.Request.Context(),
		c.Query("symptom"),
		c.Query("lat"),
		c.Query("lng"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Detail handles GET /api/v1/hospitals/:id/details.
func (h *HospitalHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid hospital ID")
		return
	}

	result, err := h.service.Detail(c.Request.Context(), id, c.Query("lat"), c.Query("lng"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
