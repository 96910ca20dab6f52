package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/controllers"
	"github.com/benluxnails/salon-web/middleware"
)

// SetupBookingRoutes configures the catalog and booking routes
func SetupBookingRoutes(app *fiber.App, ctl *controllers.BookingController) {
	app.Get("/api/services", ctl.Services)
	app.Post("/api/bookings", middleware.RequireUser(), ctl.Create)
}
