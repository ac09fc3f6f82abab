package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyward/airport-api/internal/models"
)

// AirplaneTypeRepository handles airplane_types table operations
type AirplaneTypeRepository struct {
	db *gorm.DB
}

func NewAirplaneTypeRepository(db *gorm.DB) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{db: db}
}

func (r *AirplaneTypeRepository) List(ctx context.Context) ([]models.AirplaneType, error) {
	types := make([]models.AirplaneType, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("list airplane types: %w", err)
	}
	return types, nil
}

func (r *AirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*models.AirplaneType, error) {
	var at models.AirplaneType
	err := r.db.WithContext(ctx).First(&at, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get airplane type %d: %w", id, err)
	}
	return &at, nil
}

// FindOrCreateTx reuses an existing type with the given name or inserts one,
// inside the caller's transaction. Airplane writes call this so the type
// resolution commits or rolls back together with the airplane row.
func (r *AirplaneTypeRepository) FindOrCreateTx(ctx context.Context, tx *gorm.DB, name string) (*models.AirplaneType, error) {
	var at models.AirplaneType
	err := tx.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&at, models.AirplaneType{Name: name}).Error
	if err != nil {
		return nil, fmt.Errorf("find or create airplane type %q: %w", name, err)
	}
	return &at, nil
}

func (r *AirplaneTypeRepository) Create(ctx context.Context, at *models.AirplaneType) error {
	return r.db.WithContext(ctx).Create(at).Error
}

func (r *AirplaneTypeRepository) Update(ctx context.Context, at *models.AirplaneType) error {
	return r.db.WithContext(ctx).Save(at).Error
}

func (r *AirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.AirplaneType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
