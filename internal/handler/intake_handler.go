package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uhdiapa/service-guide/internal/application"
	"github.com/uhdiapa/service-guide/internal/response"
)

// IntakeHandler handles the two intake form steps.
type IntakeHandler struct {
	service *application.IntakeService
}

// NewIntakeHandler creates a new IntakeHandler.
func NewIntakeHandler(service *application.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: service}
}

// RegisterRoutes registers the intake routes on the given router group.
func (h *IntakeHandler) RegisterRoutes(r *gin.RouterGroup) {
	intake := r.Group("/api/v1/intake")
	{
		intake.POST("/age", h.SubmitAge)
		intake.POST("/symptom", h.SubmitSymptom)
	}
}

// SubmitAge handles POST /api/v1/intake/age.
func (h *IntakeHandler) SubmitAge(c *gin.Context) {
	var req application.AgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitAge(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SubmitSymptom handles POST /api/v1/intake/symptom.
func (h *IntakeHandler) SubmitSymptom(c *gin.Context) {
	var req application.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitSymptom(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
