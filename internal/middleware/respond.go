package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/models/dtos"
)

// writeError emits the standard envelope from middleware, before any
// handler runs. Same shape as the handler-level responders.
func writeError(w http.ResponseWriter, initTime time.Time, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ResponseTime: fmt.Sprintf("%dms", time.Since(initTime).Milliseconds()),
	})
}
