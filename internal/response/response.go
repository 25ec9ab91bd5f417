package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uhdiapa/service-guide/internal/domain/apperr"
)

// Envelope is the uniform response body for successful requests.
type Envelope struct {
	Data any `json:"data"`
}

// ErrorBody is the uniform response body for failed requests.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// Success writes a 200 with the data envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

// Created writes a 201 with the data envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Kind: string(apperr.KindValidation)})
}

// Error maps an application error to its HTTP status. Unrecognized errors are
// treated as upstream failures.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusBadGateway
	switch kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConfiguration:
		status = http.StatusServiceUnavailable
	case apperr.KindUnavailable:
		status = http.StatusServiceUnavailable
	case apperr.KindNoResults:
		status = http.StatusNotFound
	case apperr.KindUpstream:
		status = http.StatusBadGateway
	}
	c.JSON(status, ErrorBody{Error: err.Error(), Kind: string(kind)})
}
