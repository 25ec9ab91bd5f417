package application

import (
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
)

// AgeRequest carries the age form value as entered.
type AgeRequest struct {
	Age string `json:"age" binding:"required"`
}

// SymptomRequest carries the free-form symptom text.
type SymptomRequest struct {
	Symptom string `json:"symptom"`
}

// IntakeStepDTO tells the client where the flow goes next.
type IntakeStepDTO struct {
	Next string `json:"next"`
}

// IntakeService validates the two intake form steps. Navigation is not
// permitted until the input validates; there is nothing else to this module.
type IntakeService struct {
	logger *zap.Logger
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(logger *zap.Logger) *IntakeService {
	return &IntakeService{logger: logger}
}

// SubmitAge validates the entered age and advances to the symptom step.
func (s *IntakeService) SubmitAge(req AgeRequest) (*IntakeStepDTO, error) {
	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil {
		return nil, apperr.NewValidationError("age must be a number")
	}
	if age <= 0 || age >= 150 {
		return nil, apperr.NewValidationError("age must be between 1 and 149")
	}
	return &IntakeStepDTO{Next: "/symptom"}, nil
}

// SubmitSymptom validates the symptom text and advances to the hospital view
// with the symptom carried as a query parameter.
func (s *IntakeService) SubmitSymptom(req SymptomRequest) (*IntakeStepDTO, error) {
	symptom := strings.TrimSpace(req.Symptom)
	if symptom == "" {
		return nil, apperr.NewValidationError("symptom text is required")
	}
	s.logger.Info("symptom submitted", zap.Int("length", len(symptom)))
	return &IntakeStepDTO{Next: "/hospital?symptom=" + url.QueryEscape(symptom)}, nil
}
