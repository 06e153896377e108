package apierr

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tarot-app/account-api/internal/middleware"
)

// Handler is the Fiber ErrorHandler rendering every error as a DataError.
func Handler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resolved := Resolve(err)
		requestID := middleware.RequestIDFrom(c)

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", resolved.Status),
			slog.String("code", resolved.Code),
			slog.Any("error", err),
		}
		if requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		if resolved.Status >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Debug("request rejected", attrs...)
		}

		return c.Status(resolved.Status).JSON(DataError{
			Status:    "error",
			Code:      resolved.Code,
			Message:   resolved.Message,
			Errors:    resolved.Errors,
			RequestID: requestID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}
