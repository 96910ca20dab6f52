package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/controllers"
)

// SetupPageRoutes configures the rendered site pages
func SetupPageRoutes(app *fiber.App, ctl *controllers.PagesController) {
	app.Get("/", ctl.Home)
	app.Get("/about", ctl.About)
	app.Get("/services", ctl.Services)
	app.Get("/contact", ctl.Contact)
	app.Get("/dashboard", ctl.Dashboard)
	app.Get("/dashboardadmin", ctl.DashboardAdmin)
}
