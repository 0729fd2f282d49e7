package controllers

import (
	"context"

	"github.com/idahoesports/site/internal/contact"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// ContactHandler is the transport independent contact pipeline.
type ContactHandler interface {
	Handle(ctx context.Context, req contact.Request) contact.Response
}

type ContactController struct {
	handler ContactHandler
}

type ContactControllerDependencies struct {
	Handler ContactHandler
}

func NewContactController(deps ContactControllerDependencies) *ContactController {
	return &ContactController{
		handler: deps.Handler,
	}
}

// Submit serves every method on the contact route; method checks happen in
// the handler so that 405 and pre-flight answers share the same headers.
func (c *ContactController) Submit(ctx fiber.Ctx) error {
	// Deliveries already under way finish during a graceful shutdown.
	resp := c.handler.Handle(context.WithoutCancel(ctx.RequestCtx()), contact.Request{
		Method: ctx.Method(),
		Body:   ctx.Body(),
	})

	return writeContactResponse(ctx, resp)
}

// writeContactResponse relies on ContactHeadersMiddleware for the headers.
func writeContactResponse(ctx fiber.Ctx, resp contact.Response) error {
	payload, err := resp.Payload()
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode contact response")
		return ctx.Status(fiber.StatusInternalServerError).Send(nil)
	}

	return ctx.Status(resp.StatusCode).Send(payload)
}
