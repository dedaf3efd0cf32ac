package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/services"
)

// Locals keys populated by AuthRequired for downstream handlers.
const (
	LocalUsername = "username"
	LocalRole     = "perfil"
)

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token and stores the decoded principal in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Unauthorized("Authorization header is required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.Unauthorized("Authorization header format must be 'Bearer <token>'")
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			logrus.Debugf("token validation failed: %v", err)
			return apperrors.Unauthorized("Invalid or expired token")
		}

		username, _ := claims["username"].(string)
		role, _ := claims["perfil"].(string)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)

		return c.Next()
	}
}
