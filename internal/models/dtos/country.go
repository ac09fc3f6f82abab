package dtos

import "skyward/airport-api/internal/models"

type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCountryResponse(m models.Country) CountryResponse {
	return CountryResponse{ID: m.ID, Name: m.Name}
}

// CountryWrite is the writable subset for create and update. Fields are
// pointers so partial updates can tell "absent" from "zero".
type CountryWrite struct {
	Name *string `json:"name"`
}

func (w CountryWrite) Validate(partial bool) error {
	if w.Name == nil {
		if partial {
			return nil
		}
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if *w.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}
