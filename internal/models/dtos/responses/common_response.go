package responses

import "time"

const (
	StatusOk    = "success"
	StatusError = "error"
)

// APIResponse is the envelope wrapping every JSON response.
type APIResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}
