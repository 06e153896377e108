package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tarot-app/account-api/internal/middleware"
)

const recordTimeout = 2 * time.Second

// Journal records every request passing through it. A failing repository is
// logged and never changes the response.
func Journal(repo Repository, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		_ = middleware.Settle(c, c.Next())

		entry := Entry{
			ID:        uuid.NewString(),
			RequestID: middleware.RequestIDFrom(c),
			Method:    c.Method(),
			Path:      c.Path(),
			Status:    c.Response().StatusCode(),
			Duration:  time.Since(start),
			CreatedAt: time.Now().UTC(),
		}
		if err := middleware.SettledError(c); err != nil {
			entry.Error = err.Error()
		}

		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := repo.Record(ctx, entry); err != nil {
			logger.Warn("audit record failed",
				slog.String("request_id", entry.RequestID),
				slog.String("path", entry.Path),
				slog.Any("error", err),
			)
		}
		return nil
	}
}
