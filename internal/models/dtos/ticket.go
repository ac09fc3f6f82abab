package dtos

import "skyward/airport-api/internal/models"

// TicketDetail is the flat variant used by retrieve and write responses.
type TicketDetail struct {
	ID       int64 `json:"id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight_id"`
	OrderID  int64 `json:"order_id"`
}

func NewTicketDetail(m models.Ticket) TicketDetail {
	return TicketDetail{
		ID:       m.ID,
		Row:      m.Row,
		Seat:     m.Seat,
		FlightID: m.FlightID,
		OrderID:  m.OrderID,
	}
}

// TicketListItem nests the full flight and order representations.
type TicketListItem struct {
	ID     int64          `json:"id"`
	Row    int            `json:"row"`
	Seat   int            `json:"seat"`
	Flight FlightListItem `json:"flight"`
	Order  OrderListItem  `json:"order"`
}

// NewTicketListItem expects the Flight (with Airplane and Crew) and Order
// (with User) chains to be preloaded.
func NewTicketListItem(m models.Ticket) TicketListItem {
	return TicketListItem{
		ID:     m.ID,
		Row:    m.Row,
		Seat:   m.Seat,
		Flight: NewFlightListItem(m.Flight),
		Order:  NewOrderListItem(m.Order),
	}
}

type TicketWrite struct {
	Row      *int   `json:"row"`
	Seat     *int   `json:"seat"`
	FlightID *int64 `json:"flight_id"`
	OrderID  *int64 `json:"order_id"`
}

func (w TicketWrite) Validate(partial bool) error {
	if w.Row == nil && !partial {
		return &ValidationError{Field: "row", Reason: "is required"}
	}
	if w.Row != nil && *w.Row <= 0 {
		return &ValidationError{Field: "row", Reason: "must be positive"}
	}
	if w.Seat == nil && !partial {
		return &ValidationError{Field: "seat", Reason: "is required"}
	}
	if w.Seat != nil && *w.Seat <= 0 {
		return &ValidationError{Field: "seat", Reason: "must be positive"}
	}
	if w.FlightID == nil && !partial {
		return &ValidationError{Field: "flight_id", Reason: "is required"}
	}
	if w.OrderID == nil && !partial {
		return &ValidationError{Field: "order_id", Reason: "is required"}
	}
	return nil
}
