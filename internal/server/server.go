package server

import (
	"time"

	"github.com/idahoesports/site/internal/controllers"
	"github.com/idahoesports/site/internal/middlewares"
	"github.com/idahoesports/site/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
)

// ContactRoutes are served by the contact controller. The second path keeps
// the existing site front end working unchanged.
var ContactRoutes = []string{
	"/api/contact",
	"/.netlify/functions/contact-clickup",
}

type HTTPServerDependencies struct {
	ContactController   *controllers.ContactController
	ChampionsController *controllers.ChampionsController
	// DisableRequestLog turns off the access log, mostly for tests.
	DisableRequestLog bool
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "idahoesports-site",
	})

	router.Use(recoverer.New())
	if !deps.DisableRequestLog {
		router.Use(logger.New())
	}

	router.Get("/health", cors.New(), func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "idahoesports-site",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// The contact routes answer their own pre-flight requests, so the cors
	// middleware is only mounted on the read-only API.
	for _, path := range ContactRoutes {
		router.All(path, middlewares.ContactHeadersMiddleware(), deps.ContactController.Submit)
	}

	router.Get("/api/champions", cors.New(), deps.ChampionsController.ListChampions)

	return router
}
