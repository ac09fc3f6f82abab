package dtos

// APIResponse is the uniform envelope for every endpoint. Data carries the
// documented representation: a single object for detail/write responses, an
// array for list responses.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ValidationError names the write-payload field that failed validation so
// the 400 body can point at it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
