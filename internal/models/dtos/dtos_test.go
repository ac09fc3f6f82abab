package dtos

import (
	"testing"

	"skyward/airport-api/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func i64Ptr(n int64) *int64   { return &n }

func TestAirplaneCapacityInResponse(t *testing.T) {
	m := models.Airplane{ID: 1, Name: "Boeing 737", Rows: 30, SeatsInRow: 6}
	resp := NewAirplaneResponse(m)
	if resp.Capacity != 180 {
		t.Errorf("Expected capacity 180, got %d", resp.Capacity)
	}
}

func TestDistanceDisplay(t *testing.T) {
	got := DistanceDisplay(500)
	want := "500 km (310.69 miles)"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCrewResponseFullName(t *testing.T) {
	m := models.Crew{ID: 1, FirstName: "Amelia", LastName: "Earhart"}
	resp := NewCrewResponse(m)
	if resp.FullName != "Amelia Earhart" {
		t.Errorf("Expected full name 'Amelia Earhart', got %q", resp.FullName)
	}
}

func TestAirportWriteNormalizesCode(t *testing.T) {
	w := AirportWrite{
		Name:             strPtr("Heathrow"),
		Code:             strPtr(" lhr "),
		ClosestBigCityID: i64Ptr(1),
	}
	if err := w.Validate(false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if *w.Code != "LHR" {
		t.Errorf("Expected code normalized to LHR, got %q", *w.Code)
	}
}

func TestAirportWriteRejectsBadCodeLength(t *testing.T) {
	w := AirportWrite{
		Name:             strPtr("Heathrow"),
		Code:             strPtr("LHRX"),
		ClosestBigCityID: i64Ptr(1),
	}
	err := w.Validate(false)
	if err == nil {
		t.Fatal("Expected error for 4-letter code")
	}
	verr, ok := err.(*ValidationError)
	if !ok || verr.Field != "code" {
		t.Errorf("Expected code validation error, got %v", err)
	}
}

func TestAirplaneWriteRejectsBothTypeForms(t *testing.T) {
	w := AirplaneWrite{
		Name:           strPtr("A320"),
		Rows:           intPtr(30),
		SeatsInRow:     intPtr(6),
		AirplaneTypeID: i64Ptr(1),
		AirplaneType:   &AirplaneTypeWrite{Name: strPtr("Narrow body")},
	}
	if err := w.Validate(false); err == nil {
		t.Fatal("Expected error when both airplane_type_id and airplane_type given")
	}
}

func TestAirplaneWriteNestedTypeFieldError(t *testing.T) {
	w := AirplaneWrite{
		Name:         strPtr("A320"),
		Rows:         intPtr(30),
		SeatsInRow:   intPtr(6),
		AirplaneType: &AirplaneTypeWrite{Name: strPtr("")},
	}
	err := w.Validate(false)
	if err == nil {
		t.Fatal("Expected nested validation error")
	}
	verr := err.(*ValidationError)
	if verr.Field != "airplane_type.name" {
		t.Errorf("Expected field airplane_type.name, got %q", verr.Field)
	}
}

func TestAirplaneWritePartialAllowsMissingFields(t *testing.T) {
	w := AirplaneWrite{Rows: intPtr(40)}
	if err := w.Validate(true); err != nil {
		t.Errorf("Expected partial update with only rows to validate, got %v", err)
	}
}

func TestFlightWriteRejectsBothRouteForms(t *testing.T) {
	w := FlightWrite{
		RouteID: i64Ptr(1),
		Route: &RouteWrite{
			SourceID:      i64Ptr(1),
			DestinationID: i64Ptr(2),
			Distance:      intPtr(500),
		},
	}
	if err := w.Validate(false); err == nil {
		t.Fatal("Expected error when both route_id and route given")
	}
}

func TestTicketWriteRejectsNonPositiveSeat(t *testing.T) {
	w := TicketWrite{
		Row:      intPtr(1),
		Seat:     intPtr(0),
		FlightID: i64Ptr(1),
		OrderID:  i64Ptr(1),
	}
	err := w.Validate(false)
	if err == nil {
		t.Fatal("Expected error for seat 0")
	}
	if verr := err.(*ValidationError); verr.Field != "seat" {
		t.Errorf("Expected seat field error, got %q", verr.Field)
	}
}
