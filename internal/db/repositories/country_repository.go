package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyward/airport-api/internal/models"
)

// CountryRepository handles country table operations
type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) List(ctx context.Context) ([]models.Country, error) {
	countries := make([]models.Country, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).First(&country, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get country %d: %w", id, err)
	}
	return &country, nil
}

func (r *CountryRepository) Create(ctx context.Context, country *models.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *CountryRepository) Update(ctx context.Context, country *models.Country) error {
	return r.db.WithContext(ctx).Save(country).Error
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Country{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
