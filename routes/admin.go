package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/controllers"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/roles"
)

// SetupAdminRoutes configures the management routes, gated behind the
// resolved admin capability
func SetupAdminRoutes(app *fiber.App, ctl *controllers.AdminController, resolver *roles.Resolver) {
	admin := app.Group("/api/admin", middleware.RequireUser(), middleware.RequireAdmin(resolver))
	admin.Get("/appointments", ctl.List)
	admin.Put("/appointments/:id/status", ctl.UpdateStatus)
	admin.Put("/appointments/:id/schedule", ctl.UpdateSchedule)
	admin.Get("/calendar", ctl.Calendar)
}
