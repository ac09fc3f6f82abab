package constants

// APIStatus is the top-level status string carried in every response envelope.
type APIStatus string

const (
	APIStatusOk    APIStatus = "OK"
	APIStatusError APIStatus = "ERROR"
)

// Common error messages returned by the API layer.
const (
	MsgUnauthenticated = "Authentication credentials were not provided or are invalid"
	MsgForbidden       = "You do not have permission to perform this action"
	MsgNotFound        = "Record not found"
	MsgInvalidBody     = "Invalid request body"
	MsgInvalidID       = "Invalid id in path"
)
