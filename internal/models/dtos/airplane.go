package dtos

import "skyward/airport-api/internal/models"

type AirplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewAirplaneTypeResponse(m models.AirplaneType) AirplaneTypeResponse {
	return AirplaneTypeResponse{ID: m.ID, Name: m.Name}
}

type AirplaneTypeWrite struct {
	Name *string `json:"name"`
}

func (w AirplaneTypeWrite) Validate(partial bool) error {
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

type AirplaneResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Rows           int     `json:"rows"`
	SeatsInRow     int     `json:"seats_in_row"`
	Image          *string `json:"image"`
	AirplaneTypeID int64   `json:"airplane_type_id"`
	Capacity       int     `json:"capacity"`
}

func NewAirplaneResponse(m models.Airplane) AirplaneResponse {
	return AirplaneResponse{
		ID:             m.ID,
		Name:           m.Name,
		Rows:           m.Rows,
		SeatsInRow:     m.SeatsInRow,
		Image:          m.Image,
		AirplaneTypeID: m.AirplaneTypeID,
		Capacity:       m.Capacity(),
	}
}

// AirplaneWrite takes the airplane type either as a foreign key or as an
// embedded object resolved with look-up-or-create semantics.
type AirplaneWrite struct {
	Name           *string            `json:"name"`
	Rows           *int               `json:"rows"`
	SeatsInRow     *int               `json:"seats_in_row"`
	Image          *string            `json:"image"`
	AirplaneTypeID *int64             `json:"airplane_type_id"`
	AirplaneType   *AirplaneTypeWrite `json:"airplane_type"`
}

func (w AirplaneWrite) Validate(partial bool) error {
	if w.Name == nil && !partial {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if w.Name != nil && *w.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if w.Rows == nil && !partial {
		return &ValidationError{Field: "rows", Reason: "is required"}
	}
	if w.Rows != nil && *w.Rows <= 0 {
		return &ValidationError{Field: "rows", Reason: "must be positive"}
	}
	if w.SeatsInRow == nil && !partial {
		return &ValidationError{Field: "seats_in_row", Reason: "is required"}
	}
	if w.SeatsInRow != nil && *w.SeatsInRow <= 0 {
		return &ValidationError{Field: "seats_in_row", Reason: "must be positive"}
	}
	if w.AirplaneTypeID != nil && w.AirplaneType != nil {
		return &ValidationError{Field: "airplane_type", Reason: "give either airplane_type_id or airplane_type, not both"}
	}
	if w.AirplaneTypeID == nil && w.AirplaneType == nil && !partial {
		return &ValidationError{Field: "airplane_type_id", Reason: "is required"}
	}
	if w.AirplaneType != nil {
		if err := w.AirplaneType.Validate(false); err != nil {
			return &ValidationError{Field: "airplane_type." + err.(*ValidationError).Field, Reason: err.(*ValidationError).Reason}
		}
	}
	return nil
}
