package cms

import (
	"encoding/json"

	"github.com/benluxnails/salon-web/models"
)

// ListServices fetches the catalog. Both the booking and edit flows call
// this fresh on every open; nothing is cached across them.
func (c *Client) ListServices(token string) ([]models.Service, error) {
	res, err := c.get(c.BaseURL+"/api/services?populate=*", token)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, decodeError(res, "failed to fetch services")
	}

	var envelope struct {
		Data []models.Service `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
