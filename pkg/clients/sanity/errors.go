package sanity

import (
	"errors"
	"fmt"
)

// Error represents an error response from the Sanity HTTP API
type Error struct {
	StatusCode  int    `json:"status_code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("sanity: %s: %s (status: %d)", e.Message, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("sanity: %s (status: %d)", e.Message, e.StatusCode)
}

// IsClientError returns true if the error is due to client input
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is due to server issues
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsAuthError returns true if the token was missing or lacks permission
func (e *Error) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsSanityError checks if an error is a Sanity API error
func IsSanityError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ErrInvalidImageRef is returned when an asset reference cannot be parsed
var ErrInvalidImageRef = errors.New("sanity: invalid image asset reference")
