package dtos

import "skyward/airport-api/internal/models"

// CityResponse carries the country name alongside the foreign key so list
// consumers do not need a second round trip.
type CityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CountryID   int64  `json:"country_id"`
	CountryName string `json:"country_name"`
}

// NewCityResponse expects m.Country to be preloaded.
func NewCityResponse(m models.City) CityResponse {
	return CityResponse{
		ID:          m.ID,
		Name:        m.Name,
		CountryID:   m.CountryID,
		CountryName: m.Country.Name,
	}
}

type CityWrite struct {
	Name      *string `json:"name"`
	CountryID *int64  `json:"country_id"`
}

func (w CityWrite) Validate(partial bool) error {
	if w.Name == nil && !partial {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if w.Name != nil && *w.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if w.CountryID == nil && !partial {
		return &ValidationError{Field: "country_id", Reason: "is required"}
	}
	return nil
}
