package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListFlights handles GET /api/flights/flights
//
// @Summary      List flights with nested crew summaries
// @Description  Optionally filtered by route and/or airplane id (repeated keys, ex. ?route=1&route=2&airplane=3)
// @Tags         Flights
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/flights/flights [get]
func (h *Handlers) ListFlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := filters.ParseFlightFilter(r.URL.Query())
		if err != nil {
			respondFilterError(w, initTime, err)
			return
		}

		flights, err := h.deps.Repo.Flights.List(r.Context(), f)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.FlightListItem, 0, len(flights))
		for _, fl := range flights {
			resp = append(resp, dtos.NewFlightListItem(fl))
		}
		RespondSuccess(w, initTime, "Flights fetched", resp)
	}
}

func (h *Handlers) GetFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		flight, err := h.deps.Repo.Flights.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Flight fetched", dtos.NewFlightDetail(*flight))
	}
}

// CreateFlight accepts the route as a foreign key or as a nested payload;
// a nested route is inserted in the same transaction as the flight.
func (h *Handlers) CreateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		_, err := h.deps.Repo.Airplanes.GetByID(r.Context(), *req.AirplaneID)
		if checkRef(w, initTime, "airplane_id", err) {
			return
		}

		flight := models.Flight{
			AirplaneID:    *req.AirplaneID,
			DepartureTime: *req.DepartureTime,
			ArrivalTime:   *req.ArrivalTime,
		}

		var nestedRoute *models.Route
		if req.Route != nil {
			_, err := h.deps.Repo.Airports.GetByID(r.Context(), *req.Route.SourceID)
			if checkRef(w, initTime, "route.source_id", err) {
				return
			}
			_, err = h.deps.Repo.Airports.GetByID(r.Context(), *req.Route.DestinationID)
			if checkRef(w, initTime, "route.destination_id", err) {
				return
			}
			nestedRoute = &models.Route{
				SourceID:      *req.Route.SourceID,
				DestinationID: *req.Route.DestinationID,
				Distance:      *req.Route.Distance,
			}
		} else {
			_, err := h.deps.Repo.Routes.GetByID(r.Context(), *req.RouteID)
			if checkRef(w, initTime, "route_id", err) {
				return
			}
			flight.RouteID = *req.RouteID
		}

		var crewIDs []int64
		if req.CrewIDs != nil {
			crewIDs = *req.CrewIDs
		}

		if err := h.deps.Repo.Flights.Create(r.Context(), &flight, nestedRoute, crewIDs); err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		created, err := h.deps.Repo.Flights.GetByID(r.Context(), flight.ID)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Flight created", dtos.NewFlightDetail(*created), http.StatusCreated)
	}
}

// UpdateFlight takes the route as a foreign key only; the nested-route
// form is a create-time convenience.
func (h *Handlers) UpdateFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.FlightWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if req.Route != nil {
			RespondError(w, initTime, nil, "route: nested payload is only accepted on create, use route_id", http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		flight, err := h.deps.Repo.Flights.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		if req.RouteID != nil {
			_, err := h.deps.Repo.Routes.GetByID(r.Context(), *req.RouteID)
			if checkRef(w, initTime, "route_id", err) {
				return
			}
			flight.RouteID = *req.RouteID
		}
		if req.AirplaneID != nil {
			_, err := h.deps.Repo.Airplanes.GetByID(r.Context(), *req.AirplaneID)
			if checkRef(w, initTime, "airplane_id", err) {
				return
			}
			flight.AirplaneID = *req.AirplaneID
		}
		if req.DepartureTime != nil {
			flight.DepartureTime = *req.DepartureTime
		}
		if req.ArrivalTime != nil {
			flight.ArrivalTime = *req.ArrivalTime
		}

		if err := h.deps.Repo.Flights.Update(r.Context(), flight, req.CrewIDs); err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		updated, err := h.deps.Repo.Flights.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Flight updated", dtos.NewFlightDetail(*updated))
	}
}

func (h *Handlers) DeleteFlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Flights.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
