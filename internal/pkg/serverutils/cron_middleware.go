// FILE: internal/pkg/serverutils/cron_middleware.go
package serverutils

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

// CronMiddleware protects the job endpoints that schedulers hit with a
// shared secret instead of a user token.
func CronMiddleware(ctx *fiber.Ctx) error {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "Cron secret not configured"})
	}

	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	if subtle.ConstantTimeCompare([]byte(authHeader[7:]), []byte(secret)) != 1 {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}
	return ctx.Next()
}
