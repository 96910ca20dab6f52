package models

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

type AppointmentStatus string

const (
	StatusPending         AppointmentStatus = "pending"
	StatusApproved        AppointmentStatus = "approved"
	StatusCancelRequested AppointmentStatus = "cancel_requested"
	StatusCancelled       AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the four lifecycle values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelRequested, StatusCancelled:
		return true
	}
	return false
}

// statusLabels are the labels the site shows for each state.
var statusLabels = map[AppointmentStatus]string{
	StatusPending:         "Pendiente",
	StatusApproved:        "Aprobada",
	StatusCancelRequested: "Cancelación solicitada",
	StatusCancelled:       "Cancelada",
}

// StatusLabel returns the display label for a status, falling back to the
// raw value for anything the backend invents later.
func StatusLabel(s AppointmentStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Appointment is one booking record. The documentId is a secondary
// identifier one backend revision uses for routing updates.
type Appointment struct {
	ID         int               `json:"id"`
	DocumentID string            `json:"documentId,omitempty"`
	Date       string            `json:"date"`
	Status     AppointmentStatus `json:"appointment_status"`
	Notes      string            `json:"notes,omitempty"`
	Services   []Service         `json:"services"`
	Owner      *User             `json:"users_permissions_user,omitempty"`
}

type appointmentFields struct {
	Date     string            `json:"date"`
	Status   AppointmentStatus `json:"appointment_status"`
	Notes    string            `json:"notes"`
	Services []Service         `json:"services"`
	Owner    *User             `json:"users_permissions_user"`
}

// UnmarshalJSON normalizes the flat and attributes-wrapped response shapes.
func (a *Appointment) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         int                `json:"id"`
		DocumentID string             `json:"documentId"`
		Attributes *appointmentFields `json:"attributes"`
		appointmentFields
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := raw.appointmentFields
	if raw.Attributes != nil {
		fields = *raw.Attributes
	}

	a.ID = raw.ID
	a.DocumentID = raw.DocumentID
	a.Date = fields.Date
	a.Status = fields.Status
	a.Notes = fields.Notes
	a.Services = fields.Services
	a.Owner = fields.Owner
	return nil
}

// CanRequestCancel reports whether the cancel-request action should be
// offered. It is hidden once the request has already been made.
func (a *Appointment) CanRequestCancel() bool {
	return a.Status != StatusCancelRequested
}

// ParseDate resolves an appointment timestamp, accepting both the
// UTC-suffixed create format and the bare edit format.
func ParseDate(date string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", date)
}

// OwnedBy filters the full collection down to the rows owned by one user.
// The backend is never asked to scope the query server-side.
func OwnedBy(appts []Appointment, userID int) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Owner != nil && a.Owner.ID == userID {
			out = append(out, a)
		}
	}
	return out
}

// FilterByStatus keeps the rows matching the filter. "all" and the empty
// string keep everything.
func FilterByStatus(appts []Appointment, status string) []Appointment {
	if status == "" || status == "all" {
		return append([]Appointment(nil), appts...)
	}
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if string(a.Status) == status {
			out = append(out, a)
		}
	}
	return out
}

// SearchAppointments applies the admin free-text search: a case-insensitive
// substring over the owner's username and email, any service name, and the
// notes. A blank term keeps everything.
func SearchAppointments(appts []Appointment, term string) []Appointment {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return append([]Appointment(nil), appts...)
	}
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if appointmentMatches(&a, lower) {
			out = append(out, a)
		}
	}
	return out
}

func appointmentMatches(a *Appointment, lower string) bool {
	if a.Owner != nil {
		if strings.Contains(strings.ToLower(a.Owner.Username), lower) ||
			strings.Contains(strings.ToLower(a.Owner.Email), lower) {
			return true
		}
	}
	for _, s := range a.Services {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(a.Notes), lower)
}

// SortByDate orders the rows chronologically ascending, in place.
// Unresolvable dates sort first.
func SortByDate(appts []Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		ti, _ := ParseDate(appts[i].Date)
		tj, _ := ParseDate(appts[j].Date)
		return ti.Before(tj)
	})
}

// CountByStatus counts the rows in one state.
func CountByStatus(appts []Appointment, status AppointmentStatus) int {
	n := 0
	for _, a := range appts {
		if a.Status == status {
			n++
		}
	}
	return n
}

// OnDay keeps the rows whose date falls on the given calendar day
// (formatted 2006-01-02, compared in UTC).
func OnDay(appts []Appointment, day string) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		t, err := ParseDate(a.Date)
		if err != nil {
			continue
		}
		if t.UTC().Format("2006-01-02") == day {
			out = append(out, a)
		}
	}
	return out
}

// ApprovedDays lists the days of a month (formatted 2006-01-02, sorted)
// that contain at least one approved appointment. The month is given as
// 2006-01.
func ApprovedDays(appts []Appointment, month string) []string {
	seen := make(map[string]bool)
	for _, a := range appts {
		if a.Status != StatusApproved {
			continue
		}
		t, err := ParseDate(a.Date)
		if err != nil {
			continue
		}
		day := t.UTC().Format("2006-01-02")
		if strings.HasPrefix(day, month+"-") {
			seen[day] = true
		}
	}
	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}
