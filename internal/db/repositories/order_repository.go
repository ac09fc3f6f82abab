package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/models"
)

// OrderRepository handles order table operations
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List preloads the owning user; the list representation nests the user
// summary.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("User").First(&order, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &order, nil
}

// Create inserts an order owned by userID. The creation timestamp is
// assigned by the store and immutable afterwards.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
