package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyward/airport-api/internal/models"
)

// CrewRepository handles crew table operations
type CrewRepository struct {
	db *gorm.DB
}

func NewCrewRepository(db *gorm.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

func (r *CrewRepository) List(ctx context.Context) ([]models.Crew, error) {
	crew := make([]models.Crew, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&crew).Error; err != nil {
		return nil, fmt.Errorf("list crew: %w", err)
	}
	return crew, nil
}

func (r *CrewRepository) GetByID(ctx context.Context, id int64) (*models.Crew, error) {
	var member models.Crew
	err := r.db.WithContext(ctx).First(&member, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get crew member %d: %w", id, err)
	}
	return &member, nil
}

func (r *CrewRepository) Create(ctx context.Context, member *models.Crew) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *CrewRepository) Update(ctx context.Context, member *models.Crew) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *CrewRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Crew{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
