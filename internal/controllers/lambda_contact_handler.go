package controllers

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/idahoesports/site/internal/contact"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// LambdaContactHandler adapts the contact pipeline to API Gateway proxy events.
type LambdaContactHandler struct {
	handler ContactHandler
}

func NewLambdaContactHandler(deps ContactControllerDependencies) *LambdaContactHandler {
	return &LambdaContactHandler{
		handler: deps.Handler,
	}
}

func (h *LambdaContactHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(event.Body)

	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			// Undecodable bodies go through as-is and fail JSON decoding.
			log.Warn().Err(err).Msg("Failed to decode base64 request body")
		} else {
			body = decoded
		}
	}

	resp := h.handler.Handle(ctx, contact.Request{
		Method: event.HTTPMethod,
		Body:   body,
	})

	headers := make(map[string]string, len(contact.ResponseHeaders))
	for key, value := range contact.ResponseHeaders {
		headers[key] = value
	}

	payload, err := resp.Payload()
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode contact response")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError, Headers: headers}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(payload),
	}, nil
}
