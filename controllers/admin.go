package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/utils"
)

// AdminController manages the full appointment collection: search, status
// transitions, date/time correction, and the calendar view. Admin
// mutations go through the multi-endpoint probe because two content-model
// revisions of the backend have been deployed with different routing.
type AdminController struct {
	CMS *cms.Client
}

// List returns every appointment, optionally narrowed by the free-text
// search over owner username/email, service names and notes.
func (ctl *AdminController) List(c *fiber.Ctx) error {
	_, token := middleware.CurrentUser(c)

	appts, err := ctl.CMS.ListAppointments(token)
	if err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return c.JSON(fiber.Map{
			"data":  []fiber.Map{},
			"error": "Error al cargar citas",
		})
	}

	filtered := models.SearchAppointments(appts, c.Query("search"))
	models.SortByDate(filtered)

	return c.JSON(fiber.Map{
		"data":  adminRows(filtered),
		"shown": len(filtered),
		"total": len(appts),
	})
}

// UpdateStatus sets an appointment's status. Any transition is permitted;
// legality is left to the backend and operator discipline. One collection
// refetch follows a successful update.
func (ctl *AdminController) UpdateStatus(c *fiber.Ctx) error {
	_, token := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}

	type statusInput struct {
		Status     string `json:"status"`
		DocumentID string `json:"document_id"`
	}
	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if !models.AppointmentStatus(input.Status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment status",
		})
	}

	fields := map[string]any{"appointment_status": input.Status}
	if err := ctl.CMS.UpdateAppointment(token, id, input.DocumentID, fields); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "No se pudo actualizar el estado. Ninguno de los endpoints funcionó.",
			Error:   err.Error(),
		})
	}

	return ctl.refetch(c, token, "Estado actualizado")
}

// UpdateSchedule corrects an appointment's date and time, using the same
// endpoint probing as the status change.
func (ctl *AdminController) UpdateSchedule(c *fiber.Ctx) error {
	_, token := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}

	type scheduleInput struct {
		Date       string `json:"date"`
		Time       string `json:"time"`
		DocumentID string `json:"document_id"`
	}
	input := new(scheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Fecha y hora son obligatorias",
		})
	}

	fields := map[string]any{"date": utils.CombineEditDate(input.Date, input.Time)}
	if err := ctl.CMS.UpdateAppointment(token, id, input.DocumentID, fields); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
			Message: "No se pudo actualizar la cita. Ninguno de los endpoints funcionó.",
			Error:   err.Error(),
		})
	}

	return ctl.refetch(c, token, "Cita reprogramada")
}

// Calendar returns the month view: the days containing at least one
// approved appointment plus aggregate approved/pending counts, and, when a
// day is selected, that day's approved appointments with time and services.
func (ctl *AdminController) Calendar(c *fiber.Ctx) error {
	_, token := middleware.CurrentUser(c)

	month := c.Query("month", time.Now().UTC().Format("2006-01"))
	if _, err := time.Parse("2006-01", month); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month, expected YYYY-MM",
		})
	}

	appts, err := ctl.CMS.ListAppointments(token)
	if err != nil {
		return backendError(c, err, "Failed to fetch appointments")
	}

	result := fiber.Map{
		"month":          month,
		"days":           models.ApprovedDays(appts, month),
		"approved_count": models.CountByStatus(appts, models.StatusApproved),
		"pending_count":  models.CountByStatus(appts, models.StatusPending),
	}

	if day := c.Query("day"); day != "" {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid day, expected YYYY-MM-DD",
			})
		}
		selected := models.FilterByStatus(models.OnDay(appts, day), string(models.StatusApproved))
		models.SortByDate(selected)

		rows := make([]fiber.Map, 0, len(selected))
		for _, a := range selected {
			t, _ := models.ParseDate(a.Date)
			names := make([]string, 0, len(a.Services))
			for _, s := range a.Services {
				names = append(names, s.Name)
			}
			rows = append(rows, fiber.Map{
				"id":       a.ID,
				"time":     t.UTC().Format("15:04"),
				"services": names,
			})
		}
		result["day"] = day
		result["selected"] = rows
	}

	return c.JSON(result)
}

// refetch performs the single post-mutation collection reload and returns
// the refreshed rows.
func (ctl *AdminController) refetch(c *fiber.Ctx, token, message string) error {
	appts, err := ctl.CMS.ListAppointments(token)
	if err != nil {
		log.Printf("Refetch after update failed: %v", err)
		return c.JSON(fiber.Map{"message": message})
	}
	models.SortByDate(appts)
	return c.JSON(fiber.Map{
		"message": message,
		"data":    adminRows(appts),
	})
}

func adminRows(appts []models.Appointment) []fiber.Map {
	rows := make([]fiber.Map, 0, len(appts))
	for _, a := range appts {
		row := fiber.Map{
			"id":                 a.ID,
			"documentId":         a.DocumentID,
			"date":               a.Date,
			"appointment_status": a.Status,
			"status_label":       models.StatusLabel(a.Status),
			"notes":              a.Notes,
			"services":           a.Services,
			"total":              models.TotalPrice(a.Services),
		}
		if a.Owner != nil {
			row["user"] = fiber.Map{
				"id":       a.Owner.ID,
				"username": a.Owner.Username,
				"email":    a.Owner.Email,
			}
		}
		rows = append(rows, row)
	}
	return rows
}
