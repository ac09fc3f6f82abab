package routes

import (
	"skyward/airport-api/internal/api"
	"skyward/airport-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all routes under /api/flights.
// Every route requires a valid bearer token; mutating routes and the
// admin group additionally require a staff token.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, jwtSecret []byte) {

	r.Route("/api/flights", func(v chi.Router) {
		v.Use(middleware.AuthMiddleware(jwtSecret))

		// Read-only for any authenticated caller
		v.Get("/countries", handlers.ListCountries())
		v.Get("/countries/{id}", handlers.GetCountry())
		v.Get("/cities", handlers.ListCities())
		v.Get("/cities/{id}", handlers.GetCity())
		v.Get("/airports", handlers.ListAirports())
		v.Get("/airports/{id}", handlers.GetAirport())
		v.Get("/airplane_types", handlers.ListAirplaneTypes())
		v.Get("/airplane_types/{id}", handlers.GetAirplaneType())
		v.Get("/airplanes", handlers.ListAirplanes())
		v.Get("/airplanes/{id}", handlers.GetAirplane())
		v.Get("/routes", handlers.ListRoutes())
		v.Get("/routes/{id}", handlers.GetRoute())
		v.Get("/crew", handlers.ListCrew())
		v.Get("/crew/{id}", handlers.GetCrewMember())
		v.Get("/flights", handlers.ListFlights())
		v.Get("/flights/{id}", handlers.GetFlight())
		v.Get("/orders", handlers.ListOrders())
		v.Get("/orders/{id}", handlers.GetOrder())
		v.Get("/tickets", handlers.ListTickets())
		v.Get("/tickets/{id}", handlers.GetTicket())

		// Staff-only group
		v.Group(func(staff chi.Router) {
			staff.Use(middleware.IsStaffMiddleware())

			staff.Post("/countries", handlers.CreateCountry())
			staff.Put("/countries/{id}", handlers.UpdateCountry())
			staff.Patch("/countries/{id}", handlers.UpdateCountry())
			staff.Delete("/countries/{id}", handlers.DeleteCountry())

			staff.Post("/cities", handlers.CreateCity())
			staff.Put("/cities/{id}", handlers.UpdateCity())
			staff.Patch("/cities/{id}", handlers.UpdateCity())
			staff.Delete("/cities/{id}", handlers.DeleteCity())

			staff.Post("/airports", handlers.CreateAirport())
			staff.Put("/airports/{id}", handlers.UpdateAirport())
			staff.Patch("/airports/{id}", handlers.UpdateAirport())
			staff.Delete("/airports/{id}", handlers.DeleteAirport())

			staff.Post("/airplane_types", handlers.CreateAirplaneType())
			staff.Put("/airplane_types/{id}", handlers.UpdateAirplaneType())
			staff.Patch("/airplane_types/{id}", handlers.UpdateAirplaneType())
			staff.Delete("/airplane_types/{id}", handlers.DeleteAirplaneType())

			staff.Post("/airplanes", handlers.CreateAirplane())
			staff.Put("/airplanes/{id}", handlers.UpdateAirplane())
			staff.Patch("/airplanes/{id}", handlers.UpdateAirplane())
			staff.Delete("/airplanes/{id}", handlers.DeleteAirplane())

			staff.Post("/routes", handlers.CreateRoute())
			staff.Put("/routes/{id}", handlers.UpdateRoute())
			staff.Patch("/routes/{id}", handlers.UpdateRoute())
			staff.Delete("/routes/{id}", handlers.DeleteRoute())

			staff.Post("/crew", handlers.CreateCrewMember())
			staff.Put("/crew/{id}", handlers.UpdateCrewMember())
			staff.Patch("/crew/{id}", handlers.UpdateCrewMember())
			staff.Delete("/crew/{id}", handlers.DeleteCrewMember())

			staff.Post("/flights", handlers.CreateFlight())
			staff.Put("/flights/{id}", handlers.UpdateFlight())
			staff.Patch("/flights/{id}", handlers.UpdateFlight())
			staff.Delete("/flights/{id}", handlers.DeleteFlight())

			// The order is still stamped with the caller's own user id.
			staff.Post("/orders", handlers.CreateOrder())
			staff.Delete("/orders/{id}", handlers.DeleteOrder())

			staff.Post("/tickets", handlers.CreateTicket())
			staff.Put("/tickets/{id}", handlers.UpdateTicket())
			staff.Patch("/tickets/{id}", handlers.UpdateTicket())
			staff.Delete("/tickets/{id}", handlers.DeleteTicket())

			staff.Get("/admin/stats", handlers.AdminStats())
		})
	})
}
