package api

import (
	"net/http"
	"time"

	"skyward/airport-api/internal/constants"
	"skyward/airport-api/internal/models"
	"skyward/airport-api/internal/models/dtos"
)

// ListCountries handles GET /api/flights/countries
//
// @Summary      List countries
// @Tags         Geography
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Router       /api/flights/countries [get]
func (h *Handlers) ListCountries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		countries, err := h.deps.Repo.Countries.List(r.Context())
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}

		resp := make([]dtos.CountryResponse, 0, len(countries))
		for _, c := range countries {
			resp = append(resp, dtos.NewCountryResponse(c))
		}
		RespondSuccess(w, initTime, "Countries fetched", resp)
	}
}

func (h *Handlers) GetCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		country, err := h.deps.Repo.Countries.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Country fetched", dtos.NewCountryResponse(*country))
	}
}

// CreateCountry handles POST /api/flights/countries (staff only)
func (h *Handlers) CreateCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CountryWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(false); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		country := models.Country{Name: *req.Name}
		if err := h.deps.Repo.Countries.Create(r.Context(), &country); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Country created", dtos.NewCountryResponse(country), http.StatusCreated)
	}
}

func (h *Handlers) UpdateCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		partial := r.Method == http.MethodPatch
		var req dtos.CountryWrite
		if err := decodeJSON(r, &req); err != nil {
			RespondError(w, initTime, err, constants.MsgInvalidBody, http.StatusBadRequest)
			return
		}
		if err := req.Validate(partial); err != nil {
			respondValidationError(w, initTime, err)
			return
		}

		country, err := h.deps.Repo.Countries.GetByID(r.Context(), id)
		if err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		if req.Name != nil {
			country.Name = *req.Name
		}

		if err := h.deps.Repo.Countries.Update(r.Context(), country); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondSuccess(w, initTime, "Country updated", dtos.NewCountryResponse(*country))
	}
}

// DeleteCountry cascades through cities, airports, routes, flights and
// tickets at the store level.
func (h *Handlers) DeleteCountry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			RespondError(w, initTime, nil, constants.MsgInvalidID, http.StatusBadRequest)
			return
		}

		if err := h.deps.Repo.Countries.Delete(r.Context(), id); err != nil {
			respondRepoError(w, initTime, err)
			return
		}
		RespondNoContent(w)
	}
}
