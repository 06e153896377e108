package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// RegisterHealthRoutes adds a readiness endpoint reporting each configured store.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		stores := fiber.Map{"postgres": "disabled", "redis": "disabled"}
		healthy := true
		if d.DB != nil {
			stores["postgres"] = "ok"
			if err := d.DB.Ping(ctx); err != nil {
				stores["postgres"] = err.Error()
				healthy = false
			}
		}
		if d.Cache != nil {
			stores["redis"] = "ok"
			if err := d.Cache.Ping(ctx).Err(); err != nil {
				stores["redis"] = err.Error()
				healthy = false
			}
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":    stores,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
