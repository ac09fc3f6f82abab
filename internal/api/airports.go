package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListAirports handles GET /api/flights/airports
//
// @Summary      List airports with nested city summaries
// @Description  Optionally filtered by closest big city id (repeated key, ex. ?city=1&city=2)
// @Tags         Geography
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/flights/airports [get]
func (h *Handlers) ListAirports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := filters.ParseAirportFilter(r.URL.Query())
		if err != nil {
			respondFilterError(w, initTime, err)
			return
		}

		airports, err := h.deps.Repo.Airports.List(r.Context(), f)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.AirportListItem, 0, len(airports))
		for _, a := range airports {
			resp = append(resp, dtos.NewAirportListItem(a))
		}
		RespondSuccess(w, initTime, "Airports fetched", resp)
	}
}

func (h *Handlers) GetAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		airport, err := h.deps.Repo.Airports.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airport fetched", dtos.NewAirportDetail(*airport))
	}
}

func (h *Handlers) CreateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		_, err := h.deps.Repo.Cities.GetByID(r.Context(), *req.ClosestBigCityID)
		if checkRef(w, initTime, "closest_big_city_id", err) {
			return
		}

		airport := models.Airport{
			Name:             *req.Name,
			Code:             *req.Code,
			ClosestBigCityID: *req.ClosestBigCityID,
		}
		if err := h.deps.Repo.Airports.Create(r.Context(), &airport); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airport created", dtos.NewAirportDetail(airport), http.StatusCreated)
	}
}

func (h *Handlers) UpdateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.AirportWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		airport, err := h.deps.Repo.Airports.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		if req.ClosestBigCityID != nil {
			_, err := h.deps.Repo.Cities.GetByID(r.Context(), *req.ClosestBigCityID)
			if checkRef(w, initTime, "closest_big_city_id", err) {
				return
			}
			airport.ClosestBigCityID = *req.ClosestBigCityID
		}
		if req.Name != nil {
			airport.Name = *req.Name
		}
		if req.Code != nil {
			airport.Code = *req.Code
		}

		if err := h.deps.Repo.Airports.Update(r.Context(), airport); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airport updated", dtos.NewAirportDetail(*airport))
	}
}

func (h *Handlers) DeleteAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Airports.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
