package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for HTTP mapping and messaging.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindConfiguration Kind = "configuration"
	KindUnavailable   Kind = "unavailable"
	KindUpstream      Kind = "upstream"
	KindNoResults     Kind = "no_results"
)

// Error is a typed application error carried from services to handlers.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// NewValidationError reports rejected input at the boundary.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError reports a missing entity by type and identifier.
func NewNotFoundError(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewConfigurationError reports missing or invalid configuration detected
// before any network call is made.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewUnavailableError reports a dependency that is not ready to serve.
func NewUnavailableError(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

// NewUpstreamError reports a transport-level failure talking to an external
// collaborator.
func NewUpstreamError(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Cause: cause}
}

// NewNoResultsError reports a semantically empty provider response, such as
// zero routes for the requested travel mode.
func NewNoResultsError(message string) *Error {
	return &Error{Kind: KindNoResults, Message: message}
}

// KindOf returns the kind of err when it is an application error, or
// KindUpstream otherwise.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUpstream
}
