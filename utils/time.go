package utils

import "fmt"

// CombineBookingDate joins the booking form's separate date (2006-01-02)
// and time (15:04) inputs into the UTC-marked instant the backend stores.
func CombineBookingDate(date, timeOfDay string) string {
	return fmt.Sprintf("%sT%s:00.000Z", date, timeOfDay)
}

// CombineEditDate is the edit flow's variant. The backend accepts the bare
// local form here, without the millisecond and UTC suffix.
func CombineEditDate(date, timeOfDay string) string {
	return fmt.Sprintf("%sT%s:00", date, timeOfDay)
}
