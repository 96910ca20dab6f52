package utils

// ErrorResponse is the body returned when a backend call could not be
// completed: a display message plus the underlying error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
