package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/controllers"
	"github.com/benluxnails/salon-web/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ctl *controllers.AuthController) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", ctl.Register)
	auth.Post("/login", ctl.Login)

	// Protected routes
	auth.Get("/me", middleware.RequireUser(), ctl.Me)
	auth.Post("/logout", middleware.RequireUser(), ctl.Logout)
}
