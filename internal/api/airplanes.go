package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListAirplanes handles GET /api/flights/airplanes
//
// @Summary      List airplanes
// @Description  Optionally filtered by airplane type id (repeated key, ex. ?airplane_types=2&airplane_types=3)
// @Tags         Fleet
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/flights/airplanes [get]
func (h *Handlers) ListAirplanes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := filters.ParseAirplaneFilter(r.URL.Query())
		if err != nil {
			respondFilterError(w, initTime, err)
			return
		}

		airplanes, err := h.deps.Repo.Airplanes.List(r.Context(), f)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.AirplaneResponse, 0, len(airplanes))
		for _, a := range airplanes {
			resp = append(resp, dtos.NewAirplaneResponse(a))
		}
		RespondSuccess(w, initTime, "Airplanes fetched", resp)
	}
}

func (h *Handlers) GetAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		airplane, err := h.deps.Repo.Airplanes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airplane fetched", dtos.NewAirplaneResponse(*airplane))
	}
}

// CreateAirplane resolves an embedded airplane type by name with
// look-up-or-create semantics, in one transaction with the insert.
func (h *Handlers) CreateAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirplaneWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		airplane := models.Airplane{
			Name:       *req.Name,
			Rows:       *req.Rows,
			SeatsInRow: *req.SeatsInRow,
			Image:      req.Image,
		}

		var typeName string
		if req.AirplaneType != nil {
			typeName = *req.AirplaneType.Name
		} else {
			_, err := h.deps.Repo.AirplaneTypes.GetByID(r.Context(), *req.AirplaneTypeID)
			if checkRef(w, initTime, "airplane_type_id", err) {
				return
			}
			airplane.AirplaneTypeID = *req.AirplaneTypeID
		}

		if err := h.deps.Repo.Airplanes.Create(r.Context(), &airplane, typeName); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airplane created", dtos.NewAirplaneResponse(airplane), http.StatusCreated)
	}
}

func (h *Handlers) UpdateAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.AirplaneWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		airplane, err := h.deps.Repo.Airplanes.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		if req.Name != nil {
			airplane.Name = *req.Name
		}
		if req.Rows != nil {
			airplane.Rows = *req.Rows
		}
		if req.SeatsInRow != nil {
			airplane.SeatsInRow = *req.SeatsInRow
		}
		if req.Image != nil {
			airplane.Image = req.Image
		}

		var typeName string
		if req.AirplaneType != nil {
			typeName = *req.AirplaneType.Name
		} else if req.AirplaneTypeID != nil {
			_, err := h.deps.Repo.AirplaneTypes.GetByID(r.Context(), *req.AirplaneTypeID)
			if checkRef(w, initTime, "airplane_type_id", err) {
				return
			}
			airplane.AirplaneTypeID = *req.AirplaneTypeID
		}

		if err := h.deps.Repo.Airplanes.Update(r.Context(), airplane, typeName); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Airplane updated", dtos.NewAirplaneResponse(*airplane))
	}
}

func (h *Handlers) DeleteAirplane() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Airplanes.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
