package dtos

import (
	"fmt"

	"skyward/airport-api/internal/models"
)

const kmToMiles = 0.621371

type RouteResponse struct {
	ID              int64  `json:"id"`
	SourceID        int64  `json:"source_id"`
	DestinationID   int64  `json:"destination_id"`
	Distance        int    `json:"distance"`
	DistanceDisplay string `json:"distance_display"`
	SourceName      string `json:"source_name"`
	DestinationName string `json:"destination_name"`
}

// NewRouteResponse expects m.Source and m.Destination to be preloaded.
func NewRouteResponse(m models.Route) RouteResponse {
	return RouteResponse{
		ID:              m.ID,
		SourceID:        m.SourceID,
		DestinationID:   m.DestinationID,
		Distance:        m.Distance,
		DistanceDisplay: DistanceDisplay(m.Distance),
		SourceName:      m.Source.Name,
		DestinationName: m.Destination.Name,
	}
}

// DistanceDisplay renders the stored kilometers with the mile conversion.
func DistanceDisplay(km int) string {
	return fmt.Sprintf("%d km (%.2f miles)", km, float64(km)*kmToMiles)
}

type RouteWrite struct {
	SourceID      *int64 `json:"source_id"`
	DestinationID *int64 `json:"destination_id"`
	Distance      *int   `json:"distance"`
}

func (w RouteWrite) Validate(partial bool) error {
	if w.SourceID == nil && !partial {
		return &ValidationError{Field: "source_id", Reason: "is required"}
	}
	if w.DestinationID == nil && !partial {
		return &ValidationError{Field: "destination_id", Reason: "is required"}
	}
	if w.Distance == nil && !partial {
		return &ValidationError{Field: "distance", Reason: "is required"}
	}
	if w.Distance != nil && *w.Distance < 0 {
		return &ValidationError{Field: "distance", Reason: "must not be negative"}
	}
	return nil
}
