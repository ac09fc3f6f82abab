package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// AirplaneRepository handles airplane table operations. Writes that embed
// an airplane type by name go through the type repository inside one
// transaction, so concurrent identical requests cannot double-insert types.
type AirplaneRepository struct {
	db    *gorm.DB
	types *AirplaneTypeRepository
}

func NewAirplaneRepository(db *gorm.DB, types *AirplaneTypeRepository) *AirplaneRepository {
	return &AirplaneRepository{db: db, types: types}
}

func (r *AirplaneRepository) List(ctx context.Context, f filters.AirplaneFilter) ([]models.Airplane, error) {
	q := r.db.WithContext(ctx).Order("id")
	if len(f.TypeIDs) > 0 {
		q = q.Where("airplane_type_id IN ?", f.TypeIDs)
	}

	airplanes := make([]models.Airplane, 0)
	if err := q.Find(&airplanes).Error; err != nil {
		return nil, fmt.Errorf("list airplanes: %w", err)
	}
	return airplanes, nil
}

func (r *AirplaneRepository) GetByID(ctx context.Context, id int64) (*models.Airplane, error) {
	var airplane models.Airplane
	err := r.db.WithContext(ctx).First(&airplane, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get airplane %d: %w", id, err)
	}
	return &airplane, nil
}

// Create inserts the airplane. When typeName is non-empty the airplane type
// is resolved with look-up-or-create semantics in the same transaction.
func (r *AirplaneRepository) Create(ctx context.Context, airplane *models.Airplane, typeName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if typeName != "" {
			at, err := r.types.FindOrCreateTx(ctx, tx, typeName)
			if err != nil {
				return err
			}
			airplane.AirplaneTypeID = at.ID
		}
		return tx.Omit(clause.Associations).Create(airplane).Error
	})
}

// Update saves the airplane, resolving an embedded type name the same way
// Create does.
func (r *AirplaneRepository) Update(ctx context.Context, airplane *models.Airplane, typeName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if typeName != "" {
			at, err := r.types.FindOrCreateTx(ctx, tx, typeName)
			if err != nil {
				return err
			}
			airplane.AirplaneTypeID = at.ID
		}
		return tx.Omit(clause.Associations).Save(airplane).Error
	})
}

func (r *AirplaneRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Airplane{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
