package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/utils"
)

const pendingValidationNotice = "Tu cuenta aún no ha sido validada por nuestro equipo. Cuando sea aprobada podrás agendar tus citas online."

type BookingController struct {
	CMS *cms.Client
}

// Services serves the catalog for the booking form's type-ahead. A backend
// failure degrades to an empty list with an error banner rather than a
// failed page.
func (ctl *BookingController) Services(c *fiber.Ctx) error {
	_, token := middleware.CurrentUser(c)
	services, err := ctl.CMS.ListServices(token)
	if err != nil {
		log.Printf("Error fetching services: %v", err)
		return c.JSON(fiber.Map{
			"data":  []models.Service{},
			"error": "Error al cargar servicios",
		})
	}

	filtered := models.FilterServices(services, c.Query("search"), parseIDList(c.Query("exclude")))
	return c.JSON(fiber.Map{
		"data":     filtered,
		"min_date": time.Now().Format("2006-01-02"),
	})
}

// Create books a new appointment. Only approved accounts get past the
// gate; everyone else sees the pending-validation notice.
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	user, token := middleware.CurrentUser(c)
	if user.AccountStatus != string(models.AccountApproved) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": pendingValidationNotice,
		})
	}

	type bookingInput struct {
		Services []int  `json:"services"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Notes    string `json:"notes"`
	}
	input := new(bookingInput)
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

	err := ctl.CMS.CreateAppointment(token, cms.CreateAppointmentInput{
		Date:     utils.CombineBookingDate(input.Date, input.Time),
		Status:   models.StatusPending,
		Notes:    input.Notes,
		Services: input.Services,
		Owner:    user.ID,
	})
	if err != nil {
		var apiErr *cms.APIError
		if errors.As(err, &apiErr) {
			// Surfaced verbatim with the HTTP status prefixed.
			return c.Status(apiErr.Status).JSON(fiber.Map{
				"error": apiErr.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Error al reservar cita. Intenta de nuevo.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "¡Cita agendada correctamente! Recibirás confirmación en breve.",
	})
}

func parseIDList(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
