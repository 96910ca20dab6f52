package cms

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError carries the backend's error message together with the HTTP
// status it arrived with.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// decodeError turns a non-success response into an APIError. The backend
// wraps messages either in an error envelope or a bare message field; when
// neither parses, a status-coded fallback is used.
func decodeError(res *http.Response, fallback string) *APIError {
	body, _ := io.ReadAll(res.Body)

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		msg = envelope.Error.Message
		if msg == "" {
			msg = envelope.Message
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("%s (status %d)", fallback, res.StatusCode)
	}
	return &APIError{Status: res.StatusCode, Message: msg}
}
