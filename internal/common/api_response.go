package common

import (
	"encoding/json"
	"net/http"
	"time"

	"newskoop/newsroom/internal/logging"
	"newskoop/newsroom/internal/models/dtos/responses"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, responses.APIResponse{
		Status:    responses.StatusOk,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, responses.APIResponse{
		Status:    responses.StatusError,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// writeJSON marshals the envelope and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body responses.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
