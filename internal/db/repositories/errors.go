package repositories

import "errors"

var (
	// ErrNotFound maps gorm.ErrRecordNotFound for the API layer.
	ErrNotFound = errors.New("record not found")

	// ErrSeatTaken is returned when a ticket targets a (flight, row, seat)
	// combination that is already sold.
	ErrSeatTaken = errors.New("row and seat already taken on this flight")

	// ErrUnknownCrew is returned when a flight write references crew ids
	// that do not exist.
	ErrUnknownCrew = errors.New("one or more crew_ids do not exist")
)
