package middlewares

import (
	"github.com/idahoesports/site/internal/contact"

	"github.com/gofiber/fiber/v3"
)

// ContactHeadersMiddleware is the only place the fiber contact routes get
// their response headers. It runs before the handler, so errors raised further
// down the chain still carry them. The Lambda adapter sets its own.
func ContactHeadersMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		for key, value := range contact.ResponseHeaders {
			c.Set(key, value)
		}

		return c.Next()
	}
}
