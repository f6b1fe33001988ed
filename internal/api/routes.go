package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinhtrinh326/schedsim/internal/config"
)

// NewApp builds the fiber application with every route registered.
func NewApp(config *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := NewSchedulerHandler(config)

	v1 := app.Group("/api/v1")
	{
		v1.Get("/health", h.Health)
		v1.Post("/schedule/:policy", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}
