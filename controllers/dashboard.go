package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/utils"
)

// DashboardController is the client's appointment self-service: list,
// edit, and cancel-request. Every mutation is followed by a full refetch on
// the caller's side; nothing is patched locally.
type DashboardController struct {
	CMS *cms.Client
}

// List returns the session user's appointments. The full collection is
// fetched and scoped down here; the backend query is not filtered.
func (ctl *DashboardController) List(c *fiber.Ctx) error {
	user, token := middleware.CurrentUser(c)

	appts, err := ctl.CMS.ListAppointments(token)
	if err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return c.JSON(fiber.Map{
			"data":  []fiber.Map{},
			"error": "Error al cargar citas",
		})
	}

	mine := models.OwnedBy(appts, user.ID)
	mine = models.FilterByStatus(mine, c.Query("status", "all"))
	models.SortByDate(mine)

	rows := make([]fiber.Map, 0, len(mine))
	for _, a := range mine {
		rows = append(rows, fiber.Map{
			"id":                 a.ID,
			"documentId":         a.DocumentID,
			"date":               a.Date,
			"appointment_status": a.Status,
			"status_label":       models.StatusLabel(a.Status),
			"notes":              a.Notes,
			"services":           a.Services,
			"total":              models.TotalPrice(a.Services),
			"can_request_cancel": a.CanRequestCancel(),
		})
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Update edits an owned appointment's services, date/time and notes.
func (ctl *DashboardController) Update(c *fiber.Ctx) error {
	user, token := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}

	type editInput struct {
		Services []int  `json:"services"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Notes    string `json:"notes"`
	}
	input := new(editInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if len(input.Services) == 0 || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Selecciona al menos un servicio, fecha y hora.",
		})
	}

	appt, resp := ctl.ownedAppointment(c, token, user.ID, id)
	if appt == nil {
		return resp
	}

	fields := map[string]any{
		"services": input.Services,
		"date":     utils.CombineEditDate(input.Date, input.Time),
		"notes":    input.Notes,
	}
	if err := ctl.CMS.UpdateAppointment(token, appt.ID, "", fields); err != nil {
		return backendError(c, err, "Failed to update appointment")
	}
	return c.JSON(fiber.Map{"message": "Cita actualizada"})
}

// RequestCancel transitions an owned appointment to cancel_requested. The
// action is refused once the request has already been made, mirroring the
// hidden control.
func (ctl *DashboardController) RequestCancel(c *fiber.Ctx) error {
	user, token := middleware.CurrentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment id",
		})
	}

	appt, resp := ctl.ownedAppointment(c, token, user.ID, id)
	if appt == nil {
		return resp
	}
	if !appt.CanRequestCancel() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "La cancelación ya fue solicitada",
		})
	}

	fields := map[string]any{"appointment_status": models.StatusCancelRequested}
	if err := ctl.CMS.UpdateAppointment(token, appt.ID, "", fields); err != nil {
		return backendError(c, err, "Failed to request cancellation")
	}
	return c.JSON(fiber.Map{"message": "Cancelación solicitada"})
}

// ownedAppointment refetches the collection and resolves one row owned by
// the session user. On failure the second return value carries the
// already-written response.
func (ctl *DashboardController) ownedAppointment(c *fiber.Ctx, token string, userID, id int) (*models.Appointment, error) {
	appts, err := ctl.CMS.ListAppointments(token)
	if err != nil {
		return nil, backendError(c, err, "Failed to fetch appointments")
	}
	for _, a := range models.OwnedBy(appts, userID) {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Appointment not found",
	})
}
