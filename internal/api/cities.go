package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListCities handles GET /api/flights/cities
//
// @Summary      List cities
// @Description  Optionally filtered by country id (repeated key, ex. ?country=1&country=2)
// @Tags         Geography
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/flights/cities [get]
func (h *Handlers) ListCities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		f, err := filters.ParseCityFilter(r.URL.Query())
		if err != nil {
			respondFilterError(w, initTime, err)
			return
		}

		cities, err := h.deps.Repo.Cities.List(r.Context(), f)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.CityResponse, 0, len(cities))
		for _, c := range cities {
			resp = append(resp, dtos.NewCityResponse(c))
		}
		RespondSuccess(w, initTime, "Cities fetched", resp)
	}
}

func (h *Handlers) GetCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		city, err := h.deps.Repo.Cities.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "City fetched", dtos.NewCityResponse(*city))
	}
}

func (h *Handlers) CreateCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CityWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		_, err := h.deps.Repo.Countries.GetByID(r.Context(), *req.CountryID)
		if checkRef(w, initTime, "country_id", err) {
			return
		}

		city := models.City{Name: *req.Name, CountryID: *req.CountryID}
		if err := h.deps.Repo.Cities.Create(r.Context(), &city); err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		created, err := h.deps.Repo.Cities.GetByID(r.Context(), city.ID)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "City created", dtos.NewCityResponse(*created), http.StatusCreated)
	}
}

func (h *Handlers) UpdateCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.CityWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		city, err := h.deps.Repo.Cities.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		if req.CountryID != nil {
			_, err := h.deps.Repo.Countries.GetByID(r.Context(), *req.CountryID)
			if checkRef(w, initTime, "country_id", err) {
				return
			}
			city.CountryID = *req.CountryID
		}
		if req.Name != nil {
			city.Name = *req.Name
		}

		if err := h.deps.Repo.Cities.Update(r.Context(), city); err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		updated, err := h.deps.Repo.Cities.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "City updated", dtos.NewCityResponse(*updated))
	}
}

func (h *Handlers) DeleteCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Cities.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
