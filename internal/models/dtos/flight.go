package dtos

import (
	"time"

	"skyward/airport-api/internal/models"
)

// FlightDetail is the flat variant used by retrieve and write responses.
// Crew appears as foreign keys only.
type FlightDetail struct {
	ID               int64     `json:"id"`
	RouteID          int64     `json:"route_id"`
	AirplaneID       int64     `json:"airplane_id"`
	CrewIDs          []int64   `json:"crew_ids"`
	AirplaneName     string    `json:"airplane_name"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
}

// NewFlightDetail expects m.Airplane and m.Crew to be preloaded.
func NewFlightDetail(m models.Flight) FlightDetail {
	crewIDs := make([]int64, 0, len(m.Crew))
	for _, c := range m.Crew {
		crewIDs = append(crewIDs, c.ID)
	}
	return FlightDetail{
		ID:               m.ID,
		RouteID:          m.RouteID,
		AirplaneID:       m.AirplaneID,
		CrewIDs:          crewIDs,
		AirplaneName:     m.Airplane.Name,
		AirplaneCapacity: m.Airplane.Capacity(),
		DepartureTime:    m.DepartureTime,
		ArrivalTime:      m.ArrivalTime,
	}
}

// FlightListItem is the read-only list variant nesting crew summaries.
type FlightListItem struct {
	ID               int64          `json:"id"`
	RouteID          int64          `json:"route_id"`
	AirplaneID       int64          `json:"airplane_id"`
	Crew             []CrewResponse `json:"crew"`
	AirplaneName     string         `json:"airplane_name"`
	AirplaneCapacity int            `json:"airplane_capacity"`
	DepartureTime    time.Time      `json:"departure_time"`
	ArrivalTime      time.Time      `json:"arrival_time"`
}

// NewFlightListItem expects m.Airplane and m.Crew to be preloaded.
func NewFlightListItem(m models.Flight) FlightListItem {
	crew := make([]CrewResponse, 0, len(m.Crew))
	for _, c := range m.Crew {
		crew = append(crew, NewCrewResponse(c))
	}
	return FlightListItem{
		ID:               m.ID,
		RouteID:          m.RouteID,
		AirplaneID:       m.AirplaneID,
		Crew:             crew,
		AirplaneName:     m.Airplane.Name,
		AirplaneCapacity: m.Airplane.Capacity(),
		DepartureTime:    m.DepartureTime,
		ArrivalTime:      m.ArrivalTime,
	}
}

// FlightWrite accepts the route as a foreign key or, on create only, as a
// nested payload inserted in the same transaction as the flight.
type FlightWrite struct {
	RouteID       *int64      `json:"route_id"`
	Route         *RouteWrite `json:"route"`
	AirplaneID    *int64      `json:"airplane_id"`
	CrewIDs       *[]int64    `json:"crew_ids"`
	DepartureTime *time.Time  `json:"departure_time"`
	ArrivalTime   *time.Time  `json:"arrival_time"`
}

func (w FlightWrite) Validate(partial bool) error {
	if w.RouteID != nil && w.Route != nil {
		return &ValidationError{Field: "route", Reason: "give either route_id or route, not both"}
	}
	if w.RouteID == nil && w.Route == nil && !partial {
		return &ValidationError{Field: "route_id", Reason: "is required"}
	}
	if w.Route != nil {
		if err := w.Route.Validate(false); err != nil {
			return &ValidationError{Field: "route." + err.(*ValidationError).Field, Reason: err.(*ValidationError).Reason}
		}
	}
	if w.AirplaneID == nil && !partial {
		return &ValidationError{Field: "airplane_id", Reason: "is required"}
	}
	if w.DepartureTime == nil && !partial {
		return &ValidationError{Field: "departure_time", Reason: "is required"}
	}
	if w.ArrivalTime == nil && !partial {
		return &ValidationError{Field: "arrival_time", Reason: "is required"}
	}
	return nil
}
