package clickup

import (
	"errors"
	"fmt"
)

// Error represents a non-2xx response from the ClickUp API
type Error struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Body       string `json:"body,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("clickup: %s (status: %d): %s", e.Message, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("clickup: %s (status: %d)", e.Message, e.StatusCode)
}

// IsClientError returns true if the error is due to client input
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is due to server issues
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsAuthError returns true if the token was rejected
func (e *Error) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited returns true if the error is due to rate limiting
func (e *Error) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsClickUpError checks if an error is a ClickUp API error
func IsClickUpError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
