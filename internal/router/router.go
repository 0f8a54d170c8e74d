package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-dev/coursehub-api/internal/config"
	"github.com/campus-dev/coursehub-api/internal/handler"
	"github.com/campus-dev/coursehub-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	CourseHandler     *handler.CourseHandler
	UserHandler       *handler.UserHandler
	AssignmentHandler *handler.AssignmentHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api)
	}

	if deps.UserHandler != nil {
		deps.UserHandler.Register(api)
	}

	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(api)
	}
}
