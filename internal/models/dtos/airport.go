package dtos

import (
	"strings"

	"skyward/airport-api/internal/models"
)

// AirportDetail is the flat variant used by retrieve and write responses.
type AirportDetail struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	ClosestBigCityID int64  `json:"closest_big_city_id"`
}

func NewAirportDetail(m models.Airport) AirportDetail {
	return AirportDetail{
		ID:               m.ID,
		Name:             m.Name,
		Code:             m.Code,
		ClosestBigCityID: m.ClosestBigCityID,
	}
}

// AirportListItem is the read-only list variant nesting the city summary.
type AirportListItem struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Code           string       `json:"code"`
	ClosestBigCity CityResponse `json:"closest_big_city"`
}

// NewAirportListItem expects m.ClosestBigCity.Country to be preloaded.
func NewAirportListItem(m models.Airport) AirportListItem {
	return AirportListItem{
		ID:             m.ID,
		Name:           m.Name,
		Code:           m.Code,
		ClosestBigCity: NewCityResponse(m.ClosestBigCity),
	}
}

type AirportWrite struct {
	Name             *string `json:"name"`
	Code             *string `json:"code"`
	ClosestBigCityID *int64  `json:"closest_big_city_id"`
}

// Validate normalizes the airport code to uppercase in place.
func (w *AirportWrite) Validate(partial bool) error {
	if w.Name == nil && !partial {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if w.Name != nil && *w.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if w.Code == nil && !partial {
		return &ValidationError{Field: "code", Reason: "is required"}
	}
	if w.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*w.Code))
		if len(code) != 3 {
			return &ValidationError{Field: "code", Reason: "must be exactly 3 letters"}
		}
		*w.Code = code
	}
	if w.ClosestBigCityID == nil && !partial {
		return &ValidationError{Field: "closest_big_city_id", Reason: "is required"}
	}
	return nil
}
