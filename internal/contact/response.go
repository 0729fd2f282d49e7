package contact

import (
	"encoding/json"
	"net/http"

	"github.com/idahoesports/site/internal/domain"
)

const (
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageFieldsRequired   = "All fields are required"
	MessageInvalidEmail     = "Invalid email address"
	MessageSuccess          = "Thank you for contacting us! We'll respond within 24-48 hours."
)

// DefaultFallbackEmail is the address visitors are pointed to when the form fails.
const DefaultFallbackEmail = "info@idahoesports.gg"

// ResponseHeaders are set on every contact response, including errors and pre-flight.
var ResponseHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Content-Type":                 "application/json",
}

// Request is a transport independent view of an inbound contact call.
type Request struct {
	Method string
	Body   []byte
}

// Response is what the transport writes back. A nil Body is sent as an empty body.
type Response struct {
	StatusCode int
	Body       any
}

// Payload encodes the body.
func (r Response) Payload() ([]byte, error) {
	if r.Body == nil {
		return []byte{}, nil
	}
	return json.Marshal(r.Body)
}

type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}

type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func configurationMessage(fallbackEmail string) string {
	return "Contact form is not properly configured. Please email us directly at " + fallbackEmail
}

func failureMessage(fallbackEmail string) string {
	return "Failed to submit contact form. Please try again or email us directly at " + fallbackEmail
}

func preflightResponse() Response {
	return Response{StatusCode: http.StatusOK}
}

func successResponse(result domain.DeliveryResult) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body: SuccessBody{
			Success: true,
			Message: MessageSuccess,
			TaskID:  result.ID,
		},
	}
}

// errorResponse only exposes details for failures that happened after the
// input was accepted; validation and configuration errors carry none.
func errorResponse(err *domain.Error) Response {
	body := ErrorBody{Error: err.Message}

	switch err.Kind {
	case domain.ErrorKindUpstreamDelivery, domain.ErrorKindMalformedRequest:
		body.Details = err.Details
	}

	return Response{
		StatusCode: err.StatusCode(),
		Body:       body,
	}
}
