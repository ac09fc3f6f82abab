package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/db/repositories"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models/dtos"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// decodeJSON decodes a write payload strictly: unknown fields are rejected
// so clients learn about typos instead of silently losing data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// respondRepoError maps repository errors onto the HTTP error table:
// missing record 404, constraint/reference violations 400, the rest 500.
func respondRepoError(w http.ResponseWriter, initTime time.Time, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		RespondError(w, initTime, nil, constants.MsgNotFound, http.StatusNotFound)
	case errors.Is(err, repositories.ErrSeatTaken), errors.Is(err, repositories.ErrUnknownCrew):
		RespondError(w, initTime, err, "", http.StatusBadRequest)
	default:
		RespondError(w, initTime, err, "Internal error", http.StatusInternalServerError)
	}
}

// respondFilterError rejects the whole request on the first bad token;
// no partial filtering reaches the store.
func respondFilterError(w http.ResponseWriter, initTime time.Time, err error) {
	var pe *filters.ParamError
	if errors.As(err, &pe) {
		RespondError(w, initTime, pe, "", http.StatusBadRequest)
		return
	}
	RespondError(w, initTime, err, "Invalid query parameters", http.StatusBadRequest)
}

// respondValidationError names the offending field in the 400 body.
func respondValidationError(w http.ResponseWriter, initTime time.Time, err error) {
	var ve *dtos.ValidationError
	if errors.As(err, &ve) {
		RespondError(w, initTime, ve, "", http.StatusBadRequest)
		return
	}
	RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
}

// checkRef resolves a foreign-key existence lookup result. Returns true if
// it already wrote a response and the handler should stop.
func checkRef(w http.ResponseWriter, initTime time.Time, field string, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repositories.ErrNotFound) {
		RespondError(w, initTime, nil, field+": does not exist", http.StatusBadRequest)
	} else {
		RespondError(w, initTime, err, "Failed to resolve "+field, http.StatusInternalServerError)
	}
	return true
}
