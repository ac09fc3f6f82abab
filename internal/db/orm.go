package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skyward/airport-api/internal/models"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate keeps the schema in step with the entity structs. Ordering
// matters: referenced tables first so the cascade constraints can be built.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.City{},
		&models.Airport{},
		&models.AirplaneType{},
		&models.Airplane{},
		&models.Route{},
		&models.Crew{},
		&models.Flight{},
		&models.Order{},
		&models.Ticket{},
	)
}
