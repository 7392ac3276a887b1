package routes

import (
	"time"

	"showcase-api/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

func SetupRoutes(app *fiber.App, workHandler *handlers.WorkHandler) {
	// API routes group
	api := app.Group("/api")

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "showcase-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// Upload route
	api.Post("/upload", workHandler.UploadWork)

	// Gallery routes
	works := api.Group("/works")
	works.Get("/", workHandler.ListWorks)
	works.Get("/:id", workHandler.GetWork)
	works.Delete("/:id", workHandler.DeleteWork)
}
