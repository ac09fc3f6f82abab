package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gorm.DB
}

func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// List preloads the city and its country in the same fetch; the airport
// list representation nests the full city summary.
func (r *AirportRepository) List(ctx context.Context, f filters.AirportFilter) ([]models.Airport, error) {
	q := r.db.WithContext(ctx).Preload("ClosestBigCity.Country").Order("id")
	if len(f.CityIDs) > 0 {
		q = q.Where("closest_big_city_id IN ?", f.CityIDs)
	}

	airports := make([]models.Airport, 0)
	if err := q.Find(&airports).Error; err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	return airports, nil
}

func (r *AirportRepository) GetByID(ctx context.Context, id int64) (*models.Airport, error) {
	var airport models.Airport
	err := r.db.WithContext(ctx).First(&airport, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get airport %d: %w", id, err)
	}
	return &airport, nil
}

func (r *AirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(airport).Error
}

func (r *AirportRepository) Update(ctx context.Context, airport *models.Airport) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(airport).Error
}

func (r *AirportRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Airport{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
