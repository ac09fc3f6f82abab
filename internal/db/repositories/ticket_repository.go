package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// TicketRepository handles ticket table operations
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// List preloads the flight chain (airplane, crew) and the order chain
// (user) in the same fetch; the ticket list representation nests both in
// full. Flight and order filters combine independently.
func (r *TicketRepository) List(ctx context.Context, f filters.TicketFilter) ([]models.Ticket, error) {
	q := r.db.WithContext(ctx).
		Preload("Flight.Airplane").
		Preload("Flight.Crew").
		Preload("Order.User").
		Order("id")
	if len(f.FlightIDs) > 0 {
		q = q.Where("flight_id IN ?", f.FlightIDs)
	}
	if len(f.OrderIDs) > 0 {
		q = q.Where("order_id IN ?", f.OrderIDs)
	}

	tickets := make([]models.Ticket, 0)
	if err := q.Find(&tickets).Error; err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).First(&ticket, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	return &ticket, nil
}

// Create inserts the ticket after checking the seat is still free, both
// inside one transaction. The composite unique index backs the check up
// against anything racing past it.
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Ticket{}).
			Where("flight_id = ? AND row = ? AND seat = ?", ticket.FlightID, ticket.Row, ticket.Seat).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSeatTaken
		}
		return tx.Omit(clause.Associations).Create(ticket).Error
	})
}

func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Ticket{}).
			Where("flight_id = ? AND row = ? AND seat = ? AND id <> ?", ticket.FlightID, ticket.Row, ticket.Seat, ticket.ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSeatTaken
		}
		return tx.Omit(clause.Associations).Save(ticket).Error
	})
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Ticket{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
