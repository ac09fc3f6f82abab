package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
)

type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
}

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server and its database are reachable.
// @Tags Misc
// @Success 200 {object} api.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]ServiceStatus)

		// Check postgres
		pgStatus := "ok"
		pgDetails := "Postgres Connected"
		if err := db.Ping(); err != nil {
			pgStatus = "down"
			pgDetails = err.Error()
		}
		services["postgres"] = ServiceStatus{
			Status:  pgStatus,
			Details: pgDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := HealthCheckResponse{
			Status:   overallStatus,
			Services: services,
			UpSince:  upSince,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
