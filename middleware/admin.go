package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/roles"
)

// RequireAdmin gates the management surface behind the resolved admin
// capability. Anything short of a positive verdict is denied.
func RequireAdmin(resolver *roles.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, token := CurrentUser(c)
		if user == nil || !resolver.IsAdmin(user, token) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Acceso solo administradores",
			})
		}
		return c.Next()
	}
}
