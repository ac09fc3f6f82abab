package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// RouteRepository handles route table operations
type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// List preloads both airport endpoints; the representation carries their
// names. Source and destination filters combine independently.
func (r *RouteRepository) List(ctx context.Context, f filters.RouteFilter) ([]models.Route, error) {
	q := r.db.WithContext(ctx).Preload("Source").Preload("Destination").Order("id")
	if len(f.SourceIDs) > 0 {
		q = q.Where("source_id IN ?", f.SourceIDs)
	}
	if len(f.DestinationIDs) > 0 {
		q = q.Where("destination_id IN ?", f.DestinationIDs)
	}

	routes := make([]models.Route, 0)
	if err := q.Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*models.Route, error) {
	var route models.Route
	err := r.db.WithContext(ctx).Preload("Source").Preload("Destination").First(&route, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}
	return &route, nil
}

func (r *RouteRepository) Create(ctx context.Context, route *models.Route) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(route).Error
}

func (r *RouteRepository) Update(ctx context.Context, route *models.Route) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(route).Error
}

func (r *RouteRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Route{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
