package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind distinguishes the failure classes of a contact submission.
type ErrorKind string

const (
	ErrorKindTransport        ErrorKind = "transport"
	ErrorKindValidation       ErrorKind = "validation"
	ErrorKindConfiguration    ErrorKind = "configuration"
	ErrorKindUpstreamDelivery ErrorKind = "upstream_delivery"
	ErrorKindArchival         ErrorKind = "archival"
	ErrorKindMalformedRequest ErrorKind = "malformed_request"
)

// Error is a classified submission failure. Message is safe to show to the
// visitor, Details carries the underlying cause for diagnostics.
type Error struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to the HTTP status returned to the visitor.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case ErrorKindTransport:
		return http.StatusMethodNotAllowed
	case ErrorKindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NewTransportError(message string) *Error {
	return &Error{Kind: ErrorKindTransport, Message: message}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: ErrorKindValidation, Message: message}
}

func NewConfigurationError(message string) *Error {
	return &Error{Kind: ErrorKindConfiguration, Message: message}
}

func NewUpstreamDeliveryError(message string, err error) *Error {
	return &Error{Kind: ErrorKindUpstreamDelivery, Message: message, Details: errDetails(err), Err: err}
}

func NewArchivalError(message string, err error) *Error {
	return &Error{Kind: ErrorKindArchival, Message: message, Details: errDetails(err), Err: err}
}

func NewMalformedRequestError(message string, err error) *Error {
	return &Error{Kind: ErrorKindMalformedRequest, Message: message, Details: errDetails(err), Err: err}
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
