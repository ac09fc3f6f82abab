package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/logging"
	"skyward/airport-api/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: getResponseTime(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      msg,
		ResponseTime: getResponseTime(initTime),
	}

	writeJSON(w, code, response)
}

// RespondNoContent acknowledges a delete. No body per HTTP 204 semantics.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func getResponseTime(init time.Time) string {
	return fmt.Sprintf("%dms", time.Since(init).Milliseconds())
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
