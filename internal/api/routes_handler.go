package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListRoutes handles GET /api/flights/routes
//
// @Summary      List routes
// @Description  Optionally filtered by source and/or destination airport id (repeated keys)
// @Tags         Flights
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/flights/routes [get]
func (h *Handlers) ListRoutes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := filters.ParseRouteFilter(r.URL.Query())
		if err != nil {
			respondFilterError(w, initTime, err)
			return
		}

		routes, err := h.deps.Repo.Routes.List(r.Context(), f)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.RouteResponse, 0, len(routes))
		for _, rt := range routes {
			resp = append(resp, dtos.NewRouteResponse(rt))
		}
		RespondSuccess(w, initTime, "Routes fetched", resp)
	}
}

func (h *Handlers) GetRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		route, err := h.deps.Repo.Routes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Route fetched", dtos.NewRouteResponse(*route))
	}
}

func (h *Handlers) CreateRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RouteWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		_, err := h.deps.Repo.Airports.GetByID(r.Context(), *req.SourceID)
		if checkRef(w, initTime, "source_id", err) {
			return
		}
		_, err = h.deps.Repo.Airports.GetByID(r.Context(), *req.DestinationID)
		if checkRef(w, initTime, "destination_id", err) {
			return
		}

		route := models.Route{
			SourceID:      *req.SourceID,
			DestinationID: *req.DestinationID,
			Distance:      *req.Distance,
		}
		if err := h.deps.Repo.Routes.Create(r.Context(), &route); err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		created, err := h.deps.Repo.Routes.GetByID(r.Context(), route.ID)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Route created", dtos.NewRouteResponse(*created), http.StatusCreated)
	}
}

func (h *Handlers) UpdateRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.RouteWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		route, err := h.deps.Repo.Routes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		if req.SourceID != nil {
			_, err := h.deps.Repo.Airports.GetByID(r.Context(), *req.SourceID)
			if checkRef(w, initTime, "source_id", err) {
				return
			}
			route.SourceID = *req.SourceID
		}
		if req.DestinationID != nil {
			_, err := h.deps.Repo.Airports.GetByID(r.Context(), *req.DestinationID)
			if checkRef(w, initTime, "destination_id", err) {
				return
			}
			route.DestinationID = *req.DestinationID
		}
		if req.Distance != nil {
			route.Distance = *req.Distance
		}

		if err := h.deps.Repo.Routes.Update(r.Context(), route); err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		updated, err := h.deps.Repo.Routes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Route updated", dtos.NewRouteResponse(*updated))
	}
}

func (h *Handlers) DeleteRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Routes.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
