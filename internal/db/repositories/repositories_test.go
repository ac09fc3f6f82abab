package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyward/airport-api/internal/db"
	"skyward/airport-api/internal/filters"
	"skyward/airport-api/internal/models"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return gdb
}

type fixture struct {
	user     models.User
	country  models.Country
	city     models.City
	src      models.Airport
	dst      models.Airport
	planeTyp models.AirplaneType
	plane    models.Airplane
	route    models.Route
	crew1    models.Crew
	crew2    models.Crew
}

func seedFixture(t *testing.T, gdb *gorm.DB) fixture {
	f := fixture{
		user:     models.User{Email: "pilot@example.com"},
		country:  models.Country{Name: "United Kingdom"},
		planeTyp: models.AirplaneType{Name: "Narrow body"},
		crew1:    models.Crew{FirstName: "Amelia", LastName: "Earhart"},
		crew2:    models.Crew{FirstName: "Charles", LastName: "Lindbergh"},
	}
	for _, m := range []any{&f.user, &f.country, &f.planeTyp, &f.crew1, &f.crew2} {
		if err := gdb.Create(m).Error; err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}
	}

	f.city = models.City{Name: "London", CountryID: f.country.ID}
	if err := gdb.Create(&f.city).Error; err != nil {
		t.Fatalf("Failed to seed city: %v", err)
	}

	f.src = models.Airport{Name: "Heathrow", Code: "LHR", ClosestBigCityID: f.city.ID}
	f.dst = models.Airport{Name: "Gatwick", Code: "LGW", ClosestBigCityID: f.city.ID}
	for _, a := range []*models.Airport{&f.src, &f.dst} {
		if err := gdb.Create(a).Error; err != nil {
			t.Fatalf("Failed to seed airport: %v", err)
		}
	}

	f.plane = models.Airplane{Name: "G-ABCD", Rows: 30, SeatsInRow: 6, AirplaneTypeID: f.planeTyp.ID}
	if err := gdb.Create(&f.plane).Error; err != nil {
		t.Fatalf("Failed to seed airplane: %v", err)
	}

	f.route = models.Route{SourceID: f.src.ID, DestinationID: f.dst.ID, Distance: 40}
	if err := gdb.Create(&f.route).Error; err != nil {
		t.Fatalf("Failed to seed route: %v", err)
	}
	return f
}

func seedFlight(t *testing.T, gdb *gorm.DB, routeID, airplaneID int64) models.Flight {
	fl := models.Flight{
		RouteID:       routeID,
		AirplaneID:    airplaneID,
		DepartureTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := gdb.Omit("Route", "Airplane", "Crew").Create(&fl).Error; err != nil {
		t.Fatalf("Failed to seed flight: %v", err)
	}
	return fl
}

func TestCountryRepositoryCRUD(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCountryRepository(gdb)
	ctx := context.Background()

	c := models.Country{Name: "France"}
	if err := repo.Create(ctx, &c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Expected assigned id")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "France" {
		t.Errorf("Expected France, got %q", got.Name)
	}

	got.Name = "Republic of France"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Republic of France" {
		t.Errorf("Unexpected list contents: %+v", all)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestCityListFilterAndPreload(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewCityRepository(gdb)
	ctx := context.Background()

	other := models.Country{Name: "France"}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	paris := models.City{Name: "Paris", CountryID: other.ID}
	if err := gdb.Create(&paris).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	cities, err := repo.List(ctx, filters.CityFilter{CountryIDs: []int64{f.country.ID}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cities) != 1 || cities[0].Name != "London" {
		t.Fatalf("Expected only London, got %+v", cities)
	}
	if cities[0].Country.Name != "United Kingdom" {
		t.Errorf("Expected country preloaded, got %+v", cities[0].Country)
	}
}

func TestCountryDeleteCascadesToCities(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	ctx := context.Background()

	if err := NewCountryRepository(gdb).Delete(ctx, f.country.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int64
	if err := gdb.Model(&models.City{}).Where("id = ?", f.city.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Error("Expected city removed with its country")
	}
}

func TestAirplaneTypeFindOrCreateReuses(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAirplaneTypeRepository(gdb)
	ctx := context.Background()

	first, err := repo.FindOrCreateTx(ctx, gdb, "Wide body")
	if err != nil {
		t.Fatalf("FindOrCreateTx failed: %v", err)
	}
	second, err := repo.FindOrCreateTx(ctx, gdb, "Wide body")
	if err != nil {
		t.Fatalf("FindOrCreateTx failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("Expected same type reused, got %d and %d", first.ID, second.ID)
	}

	// The schema itself rejects a duplicate name that slips past the lookup.
	if err := gdb.Create(&models.AirplaneType{Name: "Wide body"}).Error; err == nil {
		t.Error("Expected unique index to reject duplicate type name")
	}
}

func TestAirplaneCreateWithEmbeddedTypeName(t *testing.T) {
	gdb := setupTestDB(t)
	typeRepo := NewAirplaneTypeRepository(gdb)
	repo := NewAirplaneRepository(gdb, typeRepo)
	ctx := context.Background()

	a := models.Airplane{Name: "First", Rows: 20, SeatsInRow: 4}
	if err := repo.Create(ctx, &a, "Jumbo"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.AirplaneTypeID == 0 {
		t.Fatal("Expected resolved airplane type id")
	}

	b := models.Airplane{Name: "Second", Rows: 25, SeatsInRow: 5}
	if err := repo.Create(ctx, &b, "Jumbo"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.AirplaneTypeID != a.AirplaneTypeID {
		t.Errorf("Expected type reused, got %d and %d", a.AirplaneTypeID, b.AirplaneTypeID)
	}

	types, err := typeRepo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(types) != 1 {
		t.Errorf("Expected exactly one type row, got %d", len(types))
	}
}

func TestRouteListIndependentEndpointFilters(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewRouteRepository(gdb)
	ctx := context.Background()

	back := models.Route{SourceID: f.dst.ID, DestinationID: f.src.ID, Distance: 40}
	if err := gdb.Create(&back).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	bySource, err := repo.List(ctx, filters.RouteFilter{SourceIDs: []int64{f.src.ID}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(bySource) != 1 || bySource[0].ID != f.route.ID {
		t.Fatalf("Expected outbound route only, got %+v", bySource)
	}
	if bySource[0].Source.Name != "Heathrow" || bySource[0].Destination.Name != "Gatwick" {
		t.Errorf("Expected endpoints preloaded, got %+v", bySource[0])
	}

	byDest, err := repo.List(ctx, filters.RouteFilter{DestinationIDs: []int64{f.src.ID}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byDest) != 1 || byDest[0].ID != back.ID {
		t.Errorf("Expected return route only, got %+v", byDest)
	}
}

func TestFlightListFiltersCombine(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewFlightRepository(gdb)
	ctx := context.Background()

	back := models.Route{SourceID: f.dst.ID, DestinationID: f.src.ID, Distance: 40}
	if err := gdb.Create(&back).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	plane2 := models.Airplane{Name: "G-WXYZ", Rows: 10, SeatsInRow: 4, AirplaneTypeID: f.planeTyp.ID}
	if err := gdb.Create(&plane2).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	fl1 := seedFlight(t, gdb, f.route.ID, f.plane.ID)
	fl2 := seedFlight(t, gdb, back.ID, f.plane.ID)
	fl3 := seedFlight(t, gdb, back.ID, plane2.ID)

	byRoute, err := repo.List(ctx, filters.FlightFilter{RouteIDs: []int64{back.ID}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byRoute) != 2 || byRoute[0].ID != fl2.ID || byRoute[1].ID != fl3.ID {
		t.Fatalf("Unexpected route filter result: %+v", byRoute)
	}

	both, err := repo.List(ctx, filters.FlightFilter{
		RouteIDs:    []int64{back.ID},
		AirplaneIDs: []int64{f.plane.ID},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(both) != 1 || both[0].ID != fl2.ID {
		t.Fatalf("Expected filters to intersect, got %+v", both)
	}

	all, err := repo.List(ctx, filters.FlightFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 || all[0].ID != fl1.ID {
		t.Errorf("Expected all flights unfiltered, got %d", len(all))
	}
	if all[0].Airplane.Name != "G-ABCD" {
		t.Errorf("Expected airplane preloaded, got %+v", all[0].Airplane)
	}
}

func TestFlightCreateWithNestedRouteAndCrew(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewFlightRepository(gdb)
	ctx := context.Background()

	fl := models.Flight{
		AirplaneID:    f.plane.ID,
		DepartureTime: time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
	}
	nested := models.Route{SourceID: f.dst.ID, DestinationID: f.src.ID, Distance: 45}

	err := repo.Create(ctx, &fl, &nested, []int64{f.crew1.ID, f.crew2.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if fl.RouteID != nested.ID || nested.ID == 0 {
		t.Fatalf("Expected flight linked to inserted route, got route_id %d", fl.RouteID)
	}

	got, err := repo.GetByID(ctx, fl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Crew) != 2 {
		t.Errorf("Expected 2 crew, got %d", len(got.Crew))
	}
}

func TestFlightCreateUnknownCrewRollsBack(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewFlightRepository(gdb)
	ctx := context.Background()

	fl := models.Flight{
		AirplaneID:    f.plane.ID,
		DepartureTime: time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
	}
	nested := models.Route{SourceID: f.dst.ID, DestinationID: f.src.ID, Distance: 45}

	err := repo.Create(ctx, &fl, &nested, []int64{f.crew1.ID, 9999})
	if !errors.Is(err, ErrUnknownCrew) {
		t.Fatalf("Expected ErrUnknownCrew, got %v", err)
	}

	var routes int64
	if err := gdb.Model(&models.Route{}).Count(&routes).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if routes != 1 {
		t.Errorf("Expected nested route rolled back, found %d routes", routes)
	}
}

func TestFlightUpdateReplacesCrew(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewFlightRepository(gdb)
	ctx := context.Background()

	fl := models.Flight{
		RouteID:       f.route.ID,
		AirplaneID:    f.plane.ID,
		DepartureTime: time.Date(2026, 9, 3, 8, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, &fl, nil, []int64{f.crew1.ID}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, fl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	crew := []int64{f.crew2.ID}
	if err := repo.Update(ctx, got, &crew); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err = repo.GetByID(ctx, fl.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Crew) != 1 || got.Crew[0].ID != f.crew2.ID {
		t.Errorf("Expected crew replaced, got %+v", got.Crew)
	}
}

func TestTicketSeatUniqueness(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	fl := seedFlight(t, gdb, f.route.ID, f.plane.ID)
	order := models.Order{UserID: f.user.ID}
	if err := gdb.Omit("User", "Tickets").Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	first := models.Ticket{Row: 1, Seat: 1, FlightID: fl.ID, OrderID: order.ID}
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dup := models.Ticket{Row: 1, Seat: 1, FlightID: fl.ID, OrderID: order.ID}
	if err := repo.Create(ctx, &dup); !errors.Is(err, ErrSeatTaken) {
		t.Fatalf("Expected ErrSeatTaken, got %v", err)
	}

	// Same seat on a different flight is fine.
	fl2 := seedFlight(t, gdb, f.route.ID, f.plane.ID)
	other := models.Ticket{Row: 1, Seat: 1, FlightID: fl2.ID, OrderID: order.ID}
	if err := repo.Create(ctx, &other); err != nil {
		t.Fatalf("Create on other flight failed: %v", err)
	}

	// Updating a ticket without moving it must not trip the check.
	first.Seat = 1
	if err := repo.Update(ctx, &first); err != nil {
		t.Fatalf("No-move update failed: %v", err)
	}

	// Moving onto an occupied seat does.
	second := models.Ticket{Row: 2, Seat: 2, FlightID: fl.ID, OrderID: order.ID}
	if err := repo.Create(ctx, &second); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second.Row, second.Seat = 1, 1
	if err := repo.Update(ctx, &second); !errors.Is(err, ErrSeatTaken) {
		t.Errorf("Expected ErrSeatTaken on move, got %v", err)
	}
}

func TestOrderCreateAndListPreloadsUser(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewOrderRepository(gdb)
	ctx := context.Background()

	order := models.Order{UserID: f.user.ID}
	if err := repo.Create(ctx, &order); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if order.CreatedAt.IsZero() {
		t.Error("Expected store-assigned creation time")
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orders) != 1 || orders[0].User.Email != "pilot@example.com" {
		t.Errorf("Expected user preloaded, got %+v", orders)
	}
}

func TestTicketListPreloadsNestedChains(t *testing.T) {
	gdb := setupTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	fl := seedFlight(t, gdb, f.route.ID, f.plane.ID)
	if err := gdb.Model(&fl).Omit("Crew.*").Association("Crew").Append(&f.crew1); err != nil {
		t.Fatalf("assign crew: %v", err)
	}
	order := models.Order{UserID: f.user.ID}
	if err := gdb.Omit("User", "Tickets").Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	ticket := models.Ticket{Row: 3, Seat: 4, FlightID: fl.ID, OrderID: order.ID}
	if err := repo.Create(ctx, &ticket); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tickets, err := repo.List(ctx, filters.TicketFilter{FlightIDs: []int64{fl.ID}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("Expected one ticket, got %d", len(tickets))
	}
	got := tickets[0]
	if got.Flight.Airplane.Name != "G-ABCD" {
		t.Errorf("Expected flight airplane preloaded, got %+v", got.Flight.Airplane)
	}
	if len(got.Flight.Crew) != 1 {
		t.Errorf("Expected flight crew preloaded, got %+v", got.Flight.Crew)
	}
	if got.Order.User.Email != "pilot@example.com" {
		t.Errorf("Expected order user preloaded, got %+v", got.Order)
	}

	none, err := repo.List(ctx, filters.TicketFilter{OrderIDs: []int64{order.ID + 100}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected empty result, got %+v", none)
	}
}
