package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/roles"
)

// PagesController renders the marketing shell. The pages carry no state of
// their own beyond the session user and the resolved admin flag for the
// navigation.
type PagesController struct {
	CMS      *cms.Client
	Resolver *roles.Resolver
}

type heroSlide struct {
	Title    string
	Subtitle string
}

var heroSlides = []heroSlide{
	{Title: "Ben Lux Nails", Subtitle: "Tu salón de manicura de confianza"},
	{Title: "Diseños únicos", Subtitle: "Nail art personalizado para cada ocasión"},
	{Title: "Reserva online", Subtitle: "Agenda tu cita en segundos"},
}

func (ctl *PagesController) Home(c *fiber.Ctx) error {
	return ctl.render(c, "home", fiber.Map{"Slides": heroSlides})
}

func (ctl *PagesController) About(c *fiber.Ctx) error {
	return ctl.render(c, "about", fiber.Map{})
}

func (ctl *PagesController) Contact(c *fiber.Ctx) error {
	return ctl.render(c, "contact", fiber.Map{})
}

// Services renders the catalog page. A backend failure degrades to an
// empty catalog with an error banner.
func (ctl *PagesController) Services(c *fiber.Ctx) error {
	bind := fiber.Map{"MinDate": time.Now().Format("2006-01-02")}
	services, err := ctl.CMS.ListServices("")
	if err != nil {
		log.Printf("Error fetching services for page: %v", err)
		bind["Services"] = []models.Service{}
		bind["Error"] = "Error al cargar servicios"
	} else {
		bind["Services"] = services
	}
	return ctl.render(c, "services", bind)
}

type pageRow struct {
	Date        string
	Status      models.AppointmentStatus
	StatusLabel string
	Services    []models.Service
	Total       float64
	Notes       string
	Owner       string
}

// Dashboard renders the client's appointment list, or the restricted
// notice when no session exists.
func (ctl *PagesController) Dashboard(c *fiber.Ctx) error {
	user, token := middleware.CurrentUser(c)
	bind := fiber.Map{}
	if user != nil {
		appts, err := ctl.CMS.ListAppointments(token)
		if err != nil {
			log.Printf("Error fetching appointments: %v", err)
			bind["Error"] = "Error al cargar citas"
		} else {
			mine := models.OwnedBy(appts, user.ID)
			models.SortByDate(mine)
			bind["Rows"] = pageRows(mine)
		}
	}
	return ctl.render(c, "dashboard", bind)
}

// DashboardAdmin renders the management list, or the access-denied panel
// for anyone without the admin capability.
func (ctl *PagesController) DashboardAdmin(c *fiber.Ctx) error {
	user, token := middleware.CurrentUser(c)
	bind := fiber.Map{}
	if user != nil && ctl.Resolver.IsAdmin(user, token) {
		appts, err := ctl.CMS.ListAppointments(token)
		if err != nil {
			log.Printf("Error fetching appointments: %v", err)
			bind["Error"] = "Error al cargar citas"
		} else {
			models.SortByDate(appts)
			bind["Rows"] = pageRows(appts)
			bind["Shown"] = len(appts)
			bind["Total"] = len(appts)
		}
	}
	return ctl.render(c, "dashboardadmin", bind)
}

func pageRows(appts []models.Appointment) []pageRow {
	rows := make([]pageRow, 0, len(appts))
	for _, a := range appts {
		row := pageRow{
			Date:        a.Date,
			Status:      a.Status,
			StatusLabel: models.StatusLabel(a.Status),
			Services:    a.Services,
			Total:       models.TotalPrice(a.Services),
			Notes:       a.Notes,
		}
		if a.Owner != nil {
			row.Owner = a.Owner.Username
			if row.Owner == "" {
				row.Owner = a.Owner.Email
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (ctl *PagesController) render(c *fiber.Ctx, page string, bind fiber.Map) error {
	user, token := middleware.CurrentUser(c)
	bind["User"] = user
	bind["IsAdmin"] = ctl.Resolver.IsAdmin(user, token)
	bind["CurrentPage"] = page
	return c.Render(page, bind)
}
