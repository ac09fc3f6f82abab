package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyward/airport-api/internal/models"
)

// UserRepository reads the externally-owned users table. The only write
// path is the token-mint CLI seeding a user row.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) FindOrCreateByEmail(ctx context.Context, email string, isStaff bool) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		FirstOrCreate(&user, models.User{Email: email, IsStaff: isStaff}).Error
	if err != nil {
		return nil, fmt.Errorf("find or create user %q: %w", email, err)
	}
	return &user, nil
}
