package cms

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/benluxnails/salon-web/models"
)

const listQuery = "populate[services][populate]=*&populate=users_permissions_user"

// ListAppointments fetches the full collection with services and owner
// populated. The deployed backend has answered on both a plural and a
// singular route depending on its content-model revision, so the singular
// path is tried when the plural one fails.
func (c *Client) ListAppointments(token string) ([]models.Appointment, error) {
	var lastErr error
	for _, path := range []string{"/api/appointments", "/api/appointment"} {
		res, err := c.get(c.BaseURL+path+"?"+listQuery, token)
		if err != nil {
			lastErr = err
			continue
		}
		if res.StatusCode >= 300 {
			lastErr = decodeError(res, "failed to fetch appointments")
			res.Body.Close()
			continue
		}

		var envelope struct {
			Data []models.Appointment `json:"data"`
		}
		err = json.NewDecoder(res.Body).Decode(&envelope)
		res.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return envelope.Data, nil
	}
	return nil, lastErr
}

type CreateAppointmentInput struct {
	Date     string                   `json:"date"`
	Status   models.AppointmentStatus `json:"appointment_status"`
	Notes    string                   `json:"notes"`
	Services []int                    `json:"services"`
	Owner    int                      `json:"users_permissions_user"`
}

// CreateAppointment posts a new booking. The caller refetches the
// collection afterwards; the create response body is not consumed.
func (c *Client) CreateAppointment(token string, in CreateAppointmentInput) error {
	payload := map[string]any{"data": in}
	res, err := c.sendJSON(http.MethodPost, c.BaseURL+"/api/appointments", token, payload)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return decodeError(res, "failed to create appointment")
	}
	return nil
}

// UpdateAppointment issues a partial update against the candidate
// endpoints in a fixed order, stopping at the first success. With a
// documentId the four combinations are plural+documentId, plural+id,
// singular+documentId, singular+id; without one, only the numeric-id pair
// is tried. The probing works around a routing ambiguity between two
// deployed content-model revisions.
func (c *Client) UpdateAppointment(token string, id int, documentID string, fields map[string]any) error {
	var candidates []string
	for _, path := range []string{"/api/appointments", "/api/appointment"} {
		if documentID != "" {
			candidates = append(candidates, fmt.Sprintf("%s%s/%s", c.BaseURL, path, documentID))
		}
		candidates = append(candidates, fmt.Sprintf("%s%s/%d", c.BaseURL, path, id))
	}

	payload := map[string]any{"data": fields}
	var lastErr error
	for _, url := range candidates {
		res, err := c.sendJSON(http.MethodPut, url, token, payload)
		if err != nil {
			log.Printf("Update attempt failed for %s: %v", url, err)
			lastErr = err
			continue
		}
		if res.StatusCode < 300 {
			res.Body.Close()
			return nil
		}
		lastErr = decodeError(res, "failed to update appointment")
		res.Body.Close()
		log.Printf("Update attempt returned %d for %s", res.StatusCode, url)
	}
	if lastErr == nil {
		lastErr = errors.New("no update endpoint available")
	}
	return lastErr
}
