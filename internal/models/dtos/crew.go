package dtos

import "skyward/airport-api/internal/models"

type CrewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func NewCrewResponse(m models.Crew) CrewResponse {
	return CrewResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		FullName:  m.FullName(),
	}
}

type CrewWrite struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (w CrewWrite) Validate(partial bool) error {
	if w.FirstName == nil && !partial {
		return &ValidationError{Field: "first_name", Reason: "is required"}
	}
	if w.FirstName != nil && *w.FirstName == "" {
		return &ValidationError{Field: "first_name", Reason: "must not be empty"}
	}
	if w.LastName == nil && !partial {
		return &ValidationError{Field: "last_name", Reason: "is required"}
	}
	if w.LastName != nil && *w.LastName == "" {
		return &ValidationError{Field: "last_name", Reason: "must not be empty"}
	}
	return nil
}
