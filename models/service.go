package models

import (
	"encoding/json"
	"strings"
)

// Service is one entry of the read-only catalog. Prices are numeric and
// currency-agnostic; the site renders them with a euro suffix.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type serviceFields struct {
	Name        string      `json:"name"`
	Descripcion string      `json:"descripcion"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
}

// UnmarshalJSON accepts both response shapes the backend has produced: the
// flat record and the attributes-wrapped one. The description field arrives
// under its Spanish name on the deployed content model.
func (s *Service) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         int            `json:"id"`
		Attributes *serviceFields `json:"attributes"`
		serviceFields
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := raw.serviceFields
	if raw.Attributes != nil {
		fields = *raw.Attributes
	}

	s.ID = raw.ID
	s.Name = fields.Name
	s.Description = fields.Descripcion
	if s.Description == "" {
		s.Description = fields.Description
	}
	s.Price, _ = fields.Price.Float64()
	return nil
}

// FilterServices applies the booking form's type-ahead semantics: a
// case-insensitive substring match over name and description, with the
// already-selected services excluded. It never mutates its input.
func FilterServices(services []Service, term string, exclude []int) []Service {
	excluded := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	lower := strings.ToLower(term)

	out := make([]Service, 0, len(services))
	for _, s := range services {
		if excluded[s.ID] {
			continue
		}
		if lower != "" &&
			!strings.Contains(strings.ToLower(s.Name), lower) &&
			!strings.Contains(strings.ToLower(s.Description), lower) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TotalPrice sums the prices of the given services.
func TotalPrice(services []Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return total
}
