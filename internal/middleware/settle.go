package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const settledErrorLocal = "settled_error"

// Settle renders a chain error through the app's ErrorHandler so the caller
// can observe the final status code. It always returns nil; once settled an
// error must not propagate to outer handlers again. The error stays readable
// through SettledError.
func Settle(c *fiber.Ctx, chainErr error) error {
	if chainErr == nil {
		return nil
	}
	c.Locals(settledErrorLocal, chainErr)
	if err := c.App().ErrorHandler(c, chainErr); err != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
	return nil
}

// SettledError returns the error settled deeper in the chain, if any.
func SettledError(c *fiber.Ctx) error {
	err, _ := c.Locals(settledErrorLocal).(error)
	return err
}
