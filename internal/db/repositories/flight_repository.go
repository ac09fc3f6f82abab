package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// FlightRepository handles flight table operations, including the crew
// many-to-many and the nested-route create path.
type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// List preloads the airplane and crew in the same fetch; both flight
// representations need them. Route and airplane filters combine
// independently.
func (r *FlightRepository) List(ctx context.Context, f filters.FlightFilter) ([]models.Flight, error) {
	q := r.db.WithContext(ctx).Preload("Airplane").Preload("Crew").Order("id")
	if len(f.RouteIDs) > 0 {
		q = q.Where("route_id IN ?", f.RouteIDs)
	}
	if len(f.AirplaneIDs) > 0 {
		q = q.Where("airplane_id IN ?", f.AirplaneIDs)
	}

	flights := make([]models.Flight, 0)
	if err := q.Find(&flights).Error; err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	return flights, nil
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.WithContext(ctx).Preload("Airplane").Preload("Crew").First(&flight, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return &flight, nil
}

// Create inserts the flight. A nested route payload, the flight row and the
// crew join rows all commit or roll back as one transaction.
func (r *FlightRepository) Create(ctx context.Context, flight *models.Flight, nestedRoute *models.Route, crewIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if nestedRoute != nil {
			if err := tx.Omit(clause.Associations).Create(nestedRoute).Error; err != nil {
				return fmt.Errorf("create nested route: %w", err)
			}
			flight.RouteID = nestedRoute.ID
		}

		crew, err := resolveCrew(tx, crewIDs)
		if err != nil {
			return err
		}
		flight.Crew = crew

		return tx.Omit("Route", "Airplane").Create(flight).Error
	})
}

// Update saves the scalar columns and, when crewIDs is non-nil, replaces
// the crew assignment wholesale.
func (r *FlightRepository) Update(ctx context.Context, flight *models.Flight, crewIDs *[]int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(flight).Error; err != nil {
			return err
		}
		if crewIDs == nil {
			return nil
		}
		crew, err := resolveCrew(tx, *crewIDs)
		if err != nil {
			return err
		}
		return tx.Model(flight).Association("Crew").Replace(crew)
	})
}

func (r *FlightRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Select(clause.Associations).Delete(&models.Flight{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func resolveCrew(tx *gorm.DB, crewIDs []int64) ([]models.Crew, error) {
	if len(crewIDs) == 0 {
		return nil, nil
	}
	crew := make([]models.Crew, 0, len(crewIDs))
	if err := tx.Find(&crew, crewIDs).Error; err != nil {
		return nil, fmt.Errorf("resolve crew: %w", err)
	}
	if len(crew) != len(crewIDs) {
		return nil, ErrUnknownCrew
	}
	return crew, nil
}
