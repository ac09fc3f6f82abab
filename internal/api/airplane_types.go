package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

func (h *Handlers) ListAirplaneTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		types, err := h.deps.Repo.AirplaneTypes.List(r.Context())
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.AirplaneTypeResponse, 0, len(types))
		for _, t := range types {
			resp = append(resp, dtos.NewAirplaneTypeResponse(t))
		}
		RespondSuccess(w, initTime, "Airplane types fetched", resp)
	}
}

func (h *Handlers) GetAirplaneType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		at, err := h.deps.Repo.AirplaneTypes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airplane type fetched", dtos.NewAirplaneTypeResponse(*at))
	}
}

func (h *Handlers) CreateAirplaneType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneTypeWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		at := models.AirplaneType{Name: *req.Name}
		if err := h.deps.Repo.AirplaneTypes.Create(r.Context(), &at); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airplane type created", dtos.NewAirplaneTypeResponse(at), http.StatusCreated)
	}
}

func (h *Handlers) UpdateAirplaneType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.AirplaneTypeWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		at, err := h.deps.Repo.AirplaneTypes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if req.Name != nil {
			at.Name = *req.Name
		}

		if err := h.deps.Repo.AirplaneTypes.Update(r.Context(), at); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airplane type updated", dtos.NewAirplaneTypeResponse(*at))
	}
}

func (h *Handlers) DeleteAirplaneType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.AirplaneTypes.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
