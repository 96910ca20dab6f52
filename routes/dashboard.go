package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/controllers"
	"github.com/benluxnails/salon-web/middleware"
)

// SetupDashboardRoutes configures the client self-service routes
func SetupDashboardRoutes(app *fiber.App, ctl *controllers.DashboardController) {
	my := app.Group("/api/my", middleware.RequireUser())
	my.Get("/appointments", ctl.List)
	my.Put("/appointments/:id", ctl.Update)
	my.Post("/appointments/:id/cancel", ctl.RequestCancel)
}
