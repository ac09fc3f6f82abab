package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

func (h *Handlers) ListCrew() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		crew, err := h.deps.Repo.Crew.List(r.Context())
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.CrewResponse, 0, len(crew))
		for _, c := range crew {
			resp = append(resp, dtos.NewCrewResponse(c))
		}
		RespondSuccess(w, initTime, "Crew fetched", resp)
	}
}

func (h *Handlers) GetCrewMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		member, err := h.deps.Repo.Crew.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Crew member fetched", dtos.NewCrewResponse(*member))
	}
}

func (h *Handlers) CreateCrewMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CrewWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		member := models.Crew{FirstName: *req.FirstName, LastName: *req.LastName}
		if err := h.deps.Repo.Crew.Create(r.Context(), &member); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Crew member created", dtos.NewCrewResponse(member), http.StatusCreated)
	}
}

func (h *Handlers) UpdateCrewMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.CrewWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		member, err := h.deps.Repo.Crew.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if req.FirstName != nil {
			member.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			member.LastName = *req.LastName
		}

		if err := h.deps.Repo.Crew.Update(r.Context(), member); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Crew member updated", dtos.NewCrewResponse(*member))
	}
}

func (h *Handlers) DeleteCrewMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Crew.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
