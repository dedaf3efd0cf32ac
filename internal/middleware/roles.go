package middleware

import (
	"github.com/gofiber/fiber/v2"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
)

// RequireRoles returns a middleware that only lets the listed roles through.
// It reads the role stored by AuthRequired, so it must be attached after it
// on routes that need a role beyond plain authentication.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		for _, r := range allowed {
			if models.Role(role) == r {
				return c.Next()
			}
		}
		return apperrors.Forbidden("Role %q is not allowed to access this resource", role)
	}
}
