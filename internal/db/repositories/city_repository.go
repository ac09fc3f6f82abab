package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// CityRepository handles city table operations
type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// List preloads the country in the same fetch; the city representation
// carries the country name.
func (r *CityRepository) List(ctx context.Context, f filters.CityFilter) ([]models.City, error) {
	q := r.db.WithContext(ctx).Preload("Country").Order("id")
	if len(f.CountryIDs) > 0 {
		q = q.Where("country_id IN ?", f.CountryIDs)
	}

	cities := make([]models.City, 0)
	if err := q.Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*models.City, error) {
	var city models.City
	err := r.db.WithContext(ctx).Preload("Country").First(&city, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get city %d: %w", id, err)
	}
	return &city, nil
}

func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(city).Error
}

// Update writes the scalar columns only; the preloaded country association
// is never touched from here.
func (r *CityRepository) Update(ctx context.Context, city *models.City) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(city).Error
}

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.City{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
