package api

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skyward/airport-api/internal/db"
	"skyward/airport-api/internal/db/repositories"
)

type Repositories struct {
	Users         *repositories.UserRepository
	Countries     *repositories.CountryRepository
	Cities        *repositories.CityRepository
	Airports      *repositories.AirportRepository
	AirplaneTypes *repositories.AirplaneTypeRepository
	Airplanes     *repositories.AirplaneRepository
	Routes        *repositories.RouteRepository
	Crew          *repositories.CrewRepository
	Flights       *repositories.FlightRepository
	Orders        *repositories.OrderRepository
	Tickets       *repositories.TicketRepository
}

type Dependencies struct {
	Repo *Repositories

	// RawDB backs the health ping and the aggregate stats queries that
	// bypass the ORM. May be nil in tests.
	RawDB *sqlx.DB
}

// NewDependencies wires the repositories over an open GORM handle.
func NewDependencies(gdb *gorm.DB, rawDB *sqlx.DB) *Dependencies {
	typeRepo := repositories.NewAirplaneTypeRepository(gdb)

	repo := &Repositories{
		Users:         repositories.NewUserRepository(gdb),
		Countries:     repositories.NewCountryRepository(gdb),
		Cities:        repositories.NewCityRepository(gdb),
		Airports:      repositories.NewAirportRepository(gdb),
		AirplaneTypes: typeRepo,
		Airplanes:     repositories.NewAirplaneRepository(gdb, typeRepo),
		Routes:        repositories.NewRouteRepository(gdb),
		Crew:          repositories.NewCrewRepository(gdb),
		Flights:       repositories.NewFlightRepository(gdb),
		Orders:        repositories.NewOrderRepository(gdb),
		Tickets:       repositories.NewTicketRepository(gdb),
	}

	return &Dependencies{Repo: repo, RawDB: rawDB}
}

// InitDependencies wires the repositories over the global connections
// opened at startup.
func InitDependencies() (*Dependencies, error) {
	if db.PgDB == nil {
		return nil, errors.New("postgres ORM connection is not initialized")
	}
	return NewDependencies(db.PgDB, db.DB), nil
}
