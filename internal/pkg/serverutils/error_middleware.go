package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts panics and unhandled errors into a uniform
// JSON error response.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"code":    fiber.StatusInternalServerError,
					"message": "Internal server error",
				})
			}
		}()
		return ctx.Next()
	}
}
