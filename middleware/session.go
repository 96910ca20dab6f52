package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/session"
)

// LoadSession resolves the session cookie into the current user. Nothing is
// rejected here; handlers read the outcome from locals. A cookie whose
// token the backend no longer accepts is cleared.
func LoadSession(mgr *session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			return c.Next()
		}
		user, token, err := mgr.Current(sid)
		if err != nil {
			c.ClearCookie(cookieName)
			return c.Next()
		}
		c.Locals("user", user)
		c.Locals("token", token)
		c.Locals("sessionID", sid)
		return c.Next()
	}
}

// RequireUser rejects requests without an established session.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("user").(*models.User); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Next()
	}
}

// CurrentUser reads the session user set by LoadSession, if any.
func CurrentUser(c *fiber.Ctx) (*models.User, string) {
	user, _ := c.Locals("user").(*models.User)
	token, _ := c.Locals("token").(string)
	return user, token
}
